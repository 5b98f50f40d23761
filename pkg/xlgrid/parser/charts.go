package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/xuri/excelize/v2"
)

// chartKinds maps OOXML plot elements to chart kinds.
var chartKinds = map[string]string{
	"lineChart":     "line",
	"line3DChart":   "line3d",
	"barChart":      "column",
	"bar3DChart":    "column3d",
	"areaChart":     "area",
	"area3DChart":   "area3d",
	"pieChart":      "pie",
	"pie3DChart":    "pie3d",
	"doughnutChart": "doughnut",
	"scatterChart":  "scatter",
	"bubbleChart":   "bubble",
	"radarChart":    "radar",
}

// chartSubkinds maps c:grouping values to subkinds.
var chartSubkinds = map[string]models.ChartSubkind{
	"stacked":        models.SubkindStacked,
	"percentStacked": models.SubkindPercentStacked,
}

// anchor is a drawing object that references a chart part.
type anchor struct {
	name     string
	rID      string
	row, col int
}

// ExtractCharts returns the charts of every sheet in the package r,
// keyed by sheet name.
func ExtractCharts(r *zip.Reader) (map[string][]models.ChartInfo, error) {
	sheets, err := sheetParts(r)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.ChartInfo)
	for sheetName, sheetPath := range sheets {
		charts, err := sheetCharts(r, sheetPath)
		if err != nil {
			return nil, err
		}
		if len(charts) > 0 {
			result[sheetName] = charts
		}
	}
	return result, nil
}

func sheetCharts(r *zip.Reader, sheetPath string) ([]models.ChartInfo, error) {
	sheetRels, err := readZipFile(r, relsPath(sheetPath))
	if err != nil || sheetRels == nil {
		return nil, err
	}

	var charts []models.ChartInfo
	for _, target := range relationships(sheetRels, "drawing") {
		drawingPath := resolveRelativePath(target, "xl/drawings")
		drawingXML, err := readZipFile(r, drawingPath)
		if err != nil {
			return nil, err
		}
		drawingRels, err := readZipFile(r, relsPath(drawingPath))
		if err != nil {
			return nil, err
		}
		if drawingXML == nil || drawingRels == nil {
			continue
		}
		chartParts := relationships(drawingRels, "chart")

		for _, a := range parseDrawingAnchors(drawingXML) {
			target, ok := chartParts[a.rID]
			if !ok {
				continue
			}
			chartXML, err := readZipFile(r, resolveRelativePath(target, "xl/charts"))
			if err != nil {
				return nil, err
			}
			if chartXML == nil {
				continue
			}

			info := parseChartXML(chartXML)
			info.Name = a.name
			if cell, err := excelize.CoordinatesToCellName(a.col+1, a.row+1); err == nil {
				info.Anchor = cell
			}
			charts = append(charts, info)
		}
	}
	return charts, nil
}

// parseDrawingAnchors returns the chart anchors of a drawing part in
// document order.
func parseDrawingAnchors(data []byte) []anchor {
	var anchors []anchor
	var cur *anchor
	inFrom := false
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				cur = &anchor{}
			case "from":
				inFrom = true
			case "col", "row":
				if cur == nil || !inFrom {
					continue
				}
				txt, err := readElementText(decoder)
				if err != nil {
					return anchors
				}
				n, _ := strconv.Atoi(strings.TrimSpace(txt))
				if t.Name.Local == "col" {
					cur.col = n
				} else {
					cur.row = n
				}
			case "cNvPr":
				if cur != nil {
					cur.name = attrValue(t, "name")
				}
			case "chart":
				if cur != nil {
					cur.rID = attrValue(t, "id")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "from":
				inFrom = false
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				if cur != nil && cur.rID != "" {
					anchors = append(anchors, *cur)
				}
				cur = nil
			}
		}
	}

	return anchors
}

// parseChartXML reads the plot type, title and series references of a
// chart part.
func parseChartXML(data []byte) models.ChartInfo {
	info := models.ChartInfo{Kind: "unknown"}
	var title strings.Builder
	var path []string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := t.Name.Local
			parent := ""
			if len(path) > 0 {
				parent = path[len(path)-1]
			}
			path = append(path, name)

			switch {
			case parent == "plotArea" && chartKinds[name] != "":
				info.Kind = chartKinds[name]
			case name == "barDir" && attrValue(t, "val") == "bar":
				info.Kind = "bar"
			case name == "grouping" && chartKinds[parent] != "":
				info.Subkind = chartSubkinds[attrValue(t, "val")]
			case name == "ser":
				info.Series = append(info.Series, models.SeriesInfo{})
			}

		case xml.EndElement:
			if len(path) > 0 {
				path = path[:len(path)-1]
			}

		case xml.CharData:
			if len(path) == 0 {
				continue
			}
			switch path[len(path)-1] {
			case "t":
				if within(path, "title") && !within(path, "valAx") && !within(path, "catAx") {
					title.Write(t)
				}
			case "f":
				ref := strings.TrimSpace(string(t))
				if ref == "" || len(info.Series) == 0 || !within(path, "ser") {
					continue
				}
				s := &info.Series[len(info.Series)-1]
				switch {
				case within(path, "tx"):
					s.NameRange = ref
				case within(path, "cat"):
					s.Categories = ref
				case within(path, "val"):
					s.Values = ref
				}
			}
		}
	}

	info.Title = strings.TrimSpace(title.String())
	return info
}

func within(path []string, name string) bool {
	for _, p := range path {
		if p == name {
			return true
		}
	}
	return false
}
