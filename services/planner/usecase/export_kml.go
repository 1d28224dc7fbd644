package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/twpayne/go-kml/v2"
)

// routePalette is the fixed line palette cycled over routes in order
var routePalette = []color.RGBA{
	{R: 0xe6, G: 0x19, B: 0x4b, A: 0xff}, // red
	{R: 0x43, G: 0x63, B: 0xd8, A: 0xff}, // blue
	{R: 0x3c, G: 0xb4, B: 0x4b, A: 0xff}, // green
	{R: 0xf5, G: 0x82, B: 0x31, A: 0xff}, // orange
	{R: 0x91, G: 0x1e, B: 0xb4, A: 0xff}, // purple
	{R: 0x42, G: 0xd4, B: 0xf4, A: 0xff}, // cyan
	{R: 0xf0, G: 0x32, B: 0xe6, A: 0xff}, // magenta
	{R: 0x80, G: 0x80, B: 0x00, A: 0xff}, // olive
}

// ExportKML serializes one optimization run to a KML document with one
// folder per vehicle route: a LineString placemark for the path plus a
// Point placemark per stop, line color cycled from a fixed palette.
func (uc *PlannerUC) ExportKML(ctx context.Context, id string) ([]byte, string, error) {
	optID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", fmt.Errorf("invalid optimization id: %w", err)
	}

	routes, err := uc.repo.GetRoutes(ctx, optID)
	if err != nil {
		return nil, "", err
	}
	if len(routes) == 0 {
		return nil, "", fmt.Errorf("optimization has no routes to export")
	}

	doc := kml.Document(kml.Name(fmt.Sprintf("Optimization %s", optID)))
	for i := range routePalette {
		doc.Add(kml.SharedStyle(
			styleID(i),
			kml.LineStyle(
				kml.Color(routePalette[i]),
				kml.Width(4),
			),
		))
	}

	for i, route := range routes {
		doc.Add(routeFolder(route, i))
	}

	var buf bytes.Buffer
	if err := kml.KML(doc).WriteIndent(&buf, "", "  "); err != nil {
		return nil, "", fmt.Errorf("failed to write kml: %w", err)
	}

	return buf.Bytes(), fmt.Sprintf("routes-%s.kml", optID), nil
}

func routeFolder(route models.Route, index int) kml.Element {
	coords := make([]kml.Coordinate, 0, len(route.Stops))
	for _, stop := range route.Stops {
		coords = append(coords, kml.Coordinate{Lon: stop.Longitude, Lat: stop.Latitude})
	}

	folder := kml.Folder(
		kml.Name(route.Name),
		kml.Placemark(
			kml.Name(fmt.Sprintf("%s path", route.Name)),
			kml.StyleURL("#"+styleID(index)),
			kml.LineString(kml.Coordinates(coords...)),
		),
	)

	for _, sv := range buildStopViews(route.VehicleID, route.Stops) {
		folder.Add(kml.Placemark(
			kml.Name(fmt.Sprintf("%d. %s", sv.Order, sv.PointID)),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: sv.Longitude, Lat: sv.Latitude})),
		))
	}

	return folder
}

func styleID(index int) string {
	return fmt.Sprintf("route-%d", index%len(routePalette))
}
