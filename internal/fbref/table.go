package fbref

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/diazpablogon/footballstats/internal/dataset"
)

// ExtractTable locates a stats table by element id (or id prefix, since
// FBref suffixes some table ids with the competition number) and converts it
// into a Frame. Column names come from the data-stat attributes FBref puts
// on every header cell.
//
// FBref ships many tables inside HTML comments to defer rendering; when the
// table is not in the live DOM the page is re-parsed with the comment
// markers stripped.
func ExtractTable(page []byte, tableID string) (*dataset.Frame, error) {
	frame, err := extractFromDocument(page, tableID)
	if err == nil {
		return frame, nil
	}

	uncommented := bytes.ReplaceAll(page, []byte("<!--"), nil)
	uncommented = bytes.ReplaceAll(uncommented, []byte("-->"), nil)
	return extractFromDocument(uncommented, tableID)
}

func extractFromDocument(page []byte, tableID string) (*dataset.Frame, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	table := findTable(doc, tableID)
	if table == nil {
		return nil, fmt.Errorf("table %q not found", tableID)
	}

	frame := dataset.New(headerColumns(table)...)

	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		// FBref repeats the header mid-table as spacer rows.
		if tr.HasClass("thead") || tr.HasClass("spacer") {
			return
		}
		row := dataset.Row{}
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			stat, ok := cell.Attr("data-stat")
			if !ok || stat == "" {
				return
			}
			row[stat] = strings.TrimSpace(cell.Text())
		})
		if len(row) > 0 {
			frame.Append(row)
		}
	})

	return frame, nil
}

func findTable(doc *goquery.Document, tableID string) *goquery.Selection {
	if sel := doc.Find("table#" + tableID); sel.Length() > 0 {
		return sel.First()
	}
	var match *goquery.Selection
	doc.Find("table[id]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		id, _ := sel.Attr("id")
		if strings.HasPrefix(id, tableID) {
			match = sel
			return false
		}
		return true
	})
	return match
}

// headerColumns reads the data-stat names from the last header row: FBref
// uses stacked header rows where only the bottom one names the columns.
func headerColumns(table *goquery.Selection) []string {
	var columns []string
	rows := table.Find("thead tr")
	if rows.Length() == 0 {
		return nil
	}
	rows.Last().Find("th").Each(func(_ int, th *goquery.Selection) {
		if stat, ok := th.Attr("data-stat"); ok && stat != "" {
			columns = append(columns, stat)
		}
	})
	return columns
}
