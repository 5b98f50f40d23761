package grid

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/xuri/excelize/v2"
)

func TestExcelPageWriteAndMerge(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	page := NewExcelPage(f, "Sheet1")
	format := &models.Format{Align: "center", VAlign: "vcenter", FillColor: "#D7E4BC", Border: 6}

	if err := page.WriteCell(0, 0, "location", format); err != nil {
		t.Fatalf("WriteCell failed: %v", err)
	}
	if err := page.MergeRange(0, 1, 0, 3, "Moscow", format); err != nil {
		t.Fatalf("MergeRange failed: %v", err)
	}
	if err := page.WriteCell(2, 4, 3.5, nil); err != nil {
		t.Fatalf("WriteCell failed: %v", err)
	}

	if v, _ := f.GetCellValue("Sheet1", "A1"); v != "location" {
		t.Errorf("Expected 'location' at A1, got %q", v)
	}
	if v, _ := f.GetCellValue("Sheet1", "B1"); v != "Moscow" {
		t.Errorf("Expected 'Moscow' at B1, got %q", v)
	}
	if v, _ := f.GetCellValue("Sheet1", "E3"); v != "3.5" {
		t.Errorf("Expected '3.5' at E3, got %q", v)
	}

	merged, err := f.GetMergeCells("Sheet1")
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged range, got %d", len(merged))
	}
	if merged[0].GetStartAxis() != "B1" || merged[0].GetEndAxis() != "D1" {
		t.Errorf("Expected merge B1:D1, got %s:%s", merged[0].GetStartAxis(), merged[0].GetEndAxis())
	}

	// one style per distinct format
	if len(page.styles) != 1 {
		t.Errorf("Expected 1 cached style, got %d", len(page.styles))
	}
}

func TestExcelPageColumnWidth(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	page := NewExcelPage(f, "Sheet1")
	if err := page.SetColumnWidth(1, 3, 4); err != nil {
		t.Fatalf("SetColumnWidth failed: %v", err)
	}

	width, err := f.GetColWidth("Sheet1", "C")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if width != 4 {
		t.Errorf("Expected width 4, got %v", width)
	}
}

func TestExcelPagePrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	page := NewExcelPage(f, "Sheet1")
	area := models.NewRange("Sheet1", models.Coordinate{}, models.Coordinate{Row: 3, Col: 3})
	if err := page.SetPrintArea(area); err != nil {
		t.Fatalf("SetPrintArea failed: %v", err)
	}

	found := false
	for _, dn := range f.GetDefinedName() {
		if dn.Name == printAreaName && dn.Scope == "Sheet1" {
			found = true
			if dn.RefersTo != "'Sheet1'!$A$1:$D$4" {
				t.Errorf("Unexpected print area reference %q", dn.RefersTo)
			}
		}
	}
	if !found {
		t.Error("Print area not defined")
	}
}

func TestChartType(t *testing.T) {
	tests := []struct {
		kind     models.ChartKind
		subkind  models.ChartSubkind
		expected excelize.ChartType
		wantErr  bool
	}{
		{models.ChartPie, models.SubkindNone, excelize.Pie, false},
		{models.ChartLine, models.SubkindNone, excelize.Line, false},
		{models.ChartColumn, models.SubkindNone, excelize.Col, false},
		{models.ChartColumn, models.SubkindStacked, excelize.ColStacked, false},
		{models.ChartColumn, models.SubkindPercentStacked, excelize.ColPercentStacked, false},
		{models.ChartColumn, "clustered_3d", 0, true},
		{"radar", models.SubkindNone, 0, true},
	}

	for _, tt := range tests {
		result, err := chartType(tt.kind, tt.subkind)
		if (err != nil) != tt.wantErr {
			t.Errorf("chartType(%q, %q) error = %v, wantErr %v", tt.kind, tt.subkind, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && result != tt.expected {
			t.Errorf("chartType(%q, %q) = %v, expected %v", tt.kind, tt.subkind, result, tt.expected)
		}
	}
}

func TestToExcelChart(t *testing.T) {
	chart := models.NewChart(models.ChartLine, models.SubkindNone)
	chart.SetTitle("Forecast")
	chart.SetLegend("top")
	name := models.CellRange("Line", models.Coordinate{Row: 5, Col: 0})
	chart.AddSeries(models.ChartSeries{
		NameRange:  &name,
		Categories: models.NewRange("Line", models.Coordinate{Row: 0, Col: 1}, models.Coordinate{Row: 0, Col: 5}),
		Values:     models.NewRange("Line", models.Coordinate{Row: 5, Col: 1}, models.Coordinate{Row: 5, Col: 5}),
		Labels:     models.DataLabels{Value: true},
	})

	ec, err := toExcelChart(chart)
	if err != nil {
		t.Fatalf("toExcelChart failed: %v", err)
	}
	if len(ec.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(ec.Series))
	}
	s := ec.Series[0]
	if s.Name != "'Line'!$A$6" {
		t.Errorf("Unexpected series name %q", s.Name)
	}
	if s.Categories != "'Line'!$B$1:$F$1" {
		t.Errorf("Unexpected categories %q", s.Categories)
	}
	if s.Values != "'Line'!$B$6:$F$6" {
		t.Errorf("Unexpected values %q", s.Values)
	}
	if !ec.PlotArea.ShowVal {
		t.Error("Expected value labels on plot area")
	}
	if ec.Legend.Position != "top" {
		t.Errorf("Expected legend on top, got %q", ec.Legend.Position)
	}
}

func TestToExcelChartLiteralName(t *testing.T) {
	chart := models.NewChart(models.ChartPie, models.SubkindNone)
	chart.AddSeries(models.ChartSeries{
		Name:       "Total share",
		Categories: models.NewRange("Pie", models.Coordinate{Row: 0, Col: 1}, models.Coordinate{Row: 0, Col: 3}),
		Values:     models.NewRange("Pie", models.Coordinate{Row: 1, Col: 1}, models.Coordinate{Row: 1, Col: 3}),
	})

	ec, err := toExcelChart(chart)
	if err != nil {
		t.Fatalf("toExcelChart failed: %v", err)
	}
	if ec.Series[0].Name != "" {
		t.Errorf("Literal name leaked into series formula: %q", ec.Series[0].Name)
	}
}

var formulaElement = regexp.MustCompile(`<(?:\w+:)?f>([^<]*)</(?:\w+:)?f>`)

func TestChartFormulasAreReferences(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	page := NewExcelPage(f, "Sheet1")
	for i, label := range []string{"A", "B", "C"} {
		if err := page.WriteCell(0, i+1, label, nil); err != nil {
			t.Fatal(err)
		}
		if err := page.WriteCell(1, i+1, i+1, nil); err != nil {
			t.Fatal(err)
		}
	}

	chart := models.NewChart(models.ChartPie, models.SubkindNone)
	chart.SetTitle("Total share")
	chart.AddSeries(models.ChartSeries{
		Name:       "Total share",
		Categories: models.NewRange("Sheet1", models.Coordinate{Row: 0, Col: 1}, models.Coordinate{Row: 0, Col: 3}),
		Values:     models.NewRange("Sheet1", models.Coordinate{Row: 1, Col: 1}, models.Coordinate{Row: 1, Col: 3}),
	})
	if err := page.InsertChart(3, 0, chart); err != nil {
		t.Fatalf("InsertChart failed: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader failed: %v", err)
	}
	var chartXML []byte
	for _, zf := range zr.File {
		if zf.Name != "xl/charts/chart1.xml" {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatal(err)
		}
		chartXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
	if chartXML == nil {
		t.Fatal("xl/charts/chart1.xml not found")
	}

	matches := formulaElement.FindAllSubmatch(chartXML, -1)
	if len(matches) == 0 {
		t.Fatal("Expected formula elements in chart XML")
	}
	for _, m := range matches {
		if ref := string(m[1]); ref != "" && !strings.Contains(ref, "!") {
			t.Errorf("Formula element holds literal text %q", ref)
		}
	}
}
