package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/xuri/excelize/v2"
)

var excelHeader = []string{"Order", "Name", "Address", "Latitude", "Longitude"}

// ExportExcel serializes one optimization run to a spreadsheet with one
// sheet per route. Each sheet has a header row followed by one row per
// (stop, person) pair; stops without persons produce a single row.
// Malformed routes are skipped, not fatal.
func (uc *PlannerUC) ExportExcel(ctx context.Context, id string) ([]byte, string, error) {
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

	points, err := uc.repo.ListPoints(ctx)
	if err != nil {
		return nil, "", err
	}
	pointByID := make(map[string]models.PickupPoint, len(points))
	for _, point := range points {
		pointByID[point.ID.String()] = point
	}

	file := excelize.NewFile()
	defer file.Close()

	written := 0
	used := make(map[string]bool, len(routes))
	for i, route := range routes {
		sheet := sheetName(route.Name, i, used)
		if err := writeRouteSheet(file, sheet, route, pointByID); err != nil {
			logger.WarnCtx(ctx, "Skipping route in spreadsheet export",
				logger.String("vehicle_id", route.VehicleID),
				logger.Err(err))
			continue
		}
		written++
	}
	if written == 0 {
		return nil, "", fmt.Errorf("no exportable routes")
	}

	// excelize starts with a default sheet that is now surplus
	file.DeleteSheet("Sheet1")

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	return buf.Bytes(), fmt.Sprintf("routes-%s.xlsx", optID), nil
}

func writeRouteSheet(file *excelize.File, sheet string, route models.Route, pointByID map[string]models.PickupPoint) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	if err := file.SetSheetRow(sheet, "A1", &excelHeader); err != nil {
		return err
	}

	row := 2
	for _, sv := range buildStopViews(route.VehicleID, route.Stops) {
		name := sv.PointID
		address := ""
		if point, ok := pointByID[sv.PointID]; ok {
			name = point.Name
			address = point.Address
		}

		persons := sv.PersonIDs
		if len(persons) == 0 {
			persons = []string{""}
		}
		for range persons {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{sv.Order, name, address, sv.Latitude, sv.Longitude}
			if err := file.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

const maxSheetTitleLen = 31

// sheetName makes a route name safe and unique as a worksheet title. Excel
// caps titles at 31 characters and forbids a handful of path characters;
// route names are operator supplied and may collide, so a taken title gets
// a numeric suffix. The used map records titles already claimed.
func sheetName(name string, index int, used map[string]bool) string {
	if name == "" {
		name = fmt.Sprintf("Route %d", index+1)
	}
	replacer := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")")
	name = truncateRunes(replacer.Replace(name), maxSheetTitleLen)

	title := name
	for n := 2; used[title]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		title = truncateRunes(name, maxSheetTitleLen-len([]rune(suffix))) + suffix
	}
	used[title] = true

	return title
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
