package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	directExperienceRe = regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|yrs?|yr)\s*(?:of)?\s*(?:(?:overall|total|professional)?\s*(?:experience|exp))`)

	// Date-range cascade: month-year ranges first, then bare year ranges.
	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*(?:19|20)\d{2}\s*(?:-|\s+to\s+)\s*(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*(?:19|20)\d{2}|Present|Current|Till Date)`),
		regexp.MustCompile(`(?i)(?:19|20)\d{2}\s*(?:-|\s+to\s+)\s*(?:(?:19|20)\d{2}|Present|Current|Till Date)`),
	}

	monthYearRe = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*((?:19|20)\d{2})`)
	bareYearRe  = regexp.MustCompile(`((?:19|20)\d{2})`)
	openEndedRe = regexp.MustCompile(`(?i)Present|Current|Till Date`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// experienceFromText extracts a total-experience statement from resume text.
// A direct "N years experience" claim wins; otherwise contiguous date ranges
// inside the experience section are summed into months. Returns "" when
// neither yields anything.
func (e *Extractor) experienceFromText(text string) string {
	if direct := directExperienceRe.FindString(text); direct != "" {
		return strings.TrimSpace(direct)
	}

	section := e.experienceSection(text)
	if section == "" {
		return ""
	}

	now := e.now()
	totalMonths := 0
	for _, re := range dateRangePatterns {
		matches := re.FindAllString(section, -1)
		if len(matches) == 0 {
			continue
		}
		for _, rangeStr := range matches {
			totalMonths += rangeMonths(rangeStr, now)
		}
		// Looser patterns would re-match the same ranges.
		break
	}
	if totalMonths <= 0 {
		return ""
	}

	years := float64(totalMonths) / 12
	if years == float64(int(years)) {
		return fmt.Sprintf("%d years", int(years))
	}
	return fmt.Sprintf("%.1f years", years)
}

// experienceSection locates the text between the first experience header and
// the next section header, or "" when no experience header is present.
func (e *Extractor) experienceSection(text string) string {
	start := -1
	for _, re := range e.expHeaderRes {
		if loc := re.FindStringIndex(text); loc != nil {
			start = loc[1]
			break
		}
	}
	if start < 0 {
		return ""
	}

	tail := text[start:]
	end := len(tail)
	for _, re := range e.expEnderRes {
		if loc := re.FindStringIndex(tail); loc != nil {
			end = loc[0]
			break
		}
	}
	return tail[:end]
}

// rangeMonths converts one matched date range into an inclusive month count.
func rangeMonths(rangeStr string, now time.Time) int {
	type yearMonth struct{ year, month int }
	var dates []yearMonth

	for _, m := range monthYearRe.FindAllStringSubmatch(rangeStr, -1) {
		year, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		month := monthNumbers[strings.ToLower(m[1])]
		if month == 0 {
			month = 1
		}
		dates = append(dates, yearMonth{year: year, month: month})
	}
	if len(dates) == 0 {
		for _, m := range bareYearRe.FindAllStringSubmatch(rangeStr, -1) {
			year, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			dates = append(dates, yearMonth{year: year, month: 1})
		}
	}

	var start, end yearMonth
	switch {
	case openEndedRe.MatchString(rangeStr):
		if len(dates) == 0 {
			return 0
		}
		start = dates[0]
		end = yearMonth{year: now.Year(), month: int(now.Month())}
	case len(dates) >= 2:
		start, end = dates[0], dates[1]
	case len(dates) == 1:
		start = dates[0]
		end = yearMonth{year: now.Year(), month: int(now.Month())}
	default:
		return 0
	}

	months := (end.year-start.year)*12 + (end.month - start.month) + 1
	if months < 0 {
		return 0
	}
	return months
}
