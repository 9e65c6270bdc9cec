package pitches

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tsawler/dugout/model"
	"github.com/tsawler/dugout/pbpdoc"
)

// minCells is the smallest row the feed renders for a real pitch. Shorter
// rows are spacers or loading placeholders and are skipped.
const minCells = 6

// zoneClassPrefix is the class-name convention encoding the strike-zone
// location, e.g. "HitzoneIcon__location--14".
const zoneClassPrefix = "HitzoneIcon__location--"

// Cell positions within a pitch row.
const (
	cellCount = iota // pitch number icon + outcome label
	cellType
	cellVelocity
	cellZone
	cellBases
	cellField
)

// Extract returns the pitch events found in a play's detail body, ordered
// by ascending sequence number with unnumbered pitches last. A nil or
// empty body yields no events.
func Extract(body *goquery.Selection) []model.Pitch {
	if body == nil || body.Length() == 0 {
		return nil
	}

	var events []model.Pitch
	body.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minCells {
			return
		}
		events = append(events, extractRow(cells))
	})

	model.SortPitches(events)
	return events
}

// extractRow reads one pitch from the fixed cell positions.
func extractRow(cells *goquery.Selection) model.Pitch {
	p := model.Pitch{}

	count := cells.Eq(cellCount)
	p.Number = parseInt(count.Find(".PitchCountIcon").First().Text())
	if spans := count.Find("span"); spans.Length() > 0 {
		p.Result = pbpdoc.CollapseSpace(spans.Last().Text())
	}

	p.Type = pbpdoc.CollapseSpace(cells.Eq(cellType).Text())
	p.Velocity = parseInt(cells.Eq(cellVelocity).Text())
	p.Zone = zoneCode(cells.Eq(cellZone))
	p.OnFirst = baseOccupied(cells.Eq(cellBases), "first-base")
	p.OnSecond = baseOccupied(cells.Eq(cellBases), "second-base")
	p.OnThird = baseOccupied(cells.Eq(cellBases), "third-base")
	p.FieldLocation, _ = cells.Eq(cellField).Find(".PlayFieldIcon__location").First().Attr("style")

	return p
}

// zoneCode derives the strike-zone code from the location icon's class
// suffix.
func zoneCode(cell *goquery.Selection) string {
	icon := cell.Find(".HitzoneIcon__location").First()
	classes, ok := icon.Attr("class")
	if !ok {
		return ""
	}
	for _, c := range strings.Fields(classes) {
		if strings.HasPrefix(c, zoneClassPrefix) {
			return strings.TrimPrefix(c, zoneClassPrefix)
		}
	}
	return ""
}

// baseOccupied reports whether the diamond marker for a base carries the
// active state class.
func baseOccupied(cell *goquery.Selection, base string) bool {
	return cell.Find(".diamond."+base+".is--active").Length() > 0
}

// parseInt extracts an integer from cell text; anything non-numeric is
// treated as missing.
func parseInt(text string) *int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &n
}
