// Package export serializes generated datasets to tabular files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
)

// ErrHeaderMismatch is returned when a file header differs from domain.Columns.
var ErrHeaderMismatch = errors.New("header does not match dataset columns")

// WriteCSV writes a header row followed by one line per record.
// Missing cells are written empty.
func WriteCSV(w io.Writer, ds *domain.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns); err != nil {
		return err
	}
	row := make([]string, len(domain.Columns))
	for i := range ds.Records {
		formatRecord(&ds.Records[i], row)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatRecord(r *domain.DailyRecord, row []string) {
	row[0] = r.Date.Format(domain.DateLayout)
	row[1] = strconv.Itoa(r.UserID)
	row[2] = string(r.Gender)
	row[3] = strconv.Itoa(r.Age)
	row[4] = formatFloat(r.HeightCM)
	row[5] = formatFloat(r.WeightKG)
	row[6] = formatOptionalInt(r.Steps)
	row[7] = formatFloat(r.ActiveMinutes)
	row[8] = formatFloat(r.CaloriesBurned)
	row[9] = formatOptionalFloat(r.RestingHeartRate)
	row[10] = formatOptionalFloat(r.SleepHours)
	row[11] = string(r.StressLevel)
	row[12] = string(r.DietQuality)
	row[13] = formatOptionalFloat(r.WaterIntakeLiters)
	row[14] = formatFloat(r.FitnessScore)
	row[15] = formatFloat(r.WeightChangeKG)
	row[16] = formatBool(r.GoalAchieved)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ReadCSV parses a file produced by WriteCSV back into records.
func ReadCSV(r io.Reader) ([]domain.DailyRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(domain.Columns)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, name := range domain.Columns {
		if header[i] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrHeaderMismatch, i, header[i], name)
		}
	}

	var records []domain.DailyRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
}

func parseRecord(row []string) (domain.DailyRecord, error) {
	p := fieldParser{row: row}
	rec := domain.DailyRecord{
		Date:              p.date(0),
		UserID:            p.int(1),
		Gender:            domain.Gender(row[2]),
		Age:               p.int(3),
		HeightCM:          p.float(4),
		WeightKG:          p.float(5),
		Steps:             p.optionalInt(6),
		ActiveMinutes:     p.float(7),
		CaloriesBurned:    p.float(8),
		RestingHeartRate:  p.optionalFloat(9),
		SleepHours:        p.optionalFloat(10),
		StressLevel:       domain.StressLevel(row[11]),
		DietQuality:       domain.DietQuality(row[12]),
		WaterIntakeLiters: p.optionalFloat(13),
		FitnessScore:      p.float(14),
		WeightChangeKG:    p.float(15),
		GoalAchieved:      p.bool(16),
	}
	return rec, p.err
}

// fieldParser keeps the first conversion error so a row can be parsed in one expression.
type fieldParser struct {
	row []string
	err error
}

func (p *fieldParser) fail(col int, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("column %s: %w", domain.Columns[col], err)
	}
}

func (p *fieldParser) date(col int) time.Time {
	t, err := time.Parse(domain.DateLayout, p.row[col])
	if err != nil {
		p.fail(col, err)
	}
	return t
}

func (p *fieldParser) int(col int) int {
	v, err := strconv.Atoi(p.row[col])
	if err != nil {
		p.fail(col, err)
	}
	return v
}

func (p *fieldParser) float(col int) float64 {
	v, err := strconv.ParseFloat(p.row[col], 64)
	if err != nil {
		p.fail(col, err)
	}
	return v
}

func (p *fieldParser) optionalInt(col int) *int {
	if p.row[col] == "" {
		return nil
	}
	v := p.int(col)
	return &v
}

func (p *fieldParser) optionalFloat(col int) *float64 {
	if p.row[col] == "" {
		return nil
	}
	v := p.float(col)
	return &v
}

func (p *fieldParser) bool(col int) bool {
	switch p.row[col] {
	case "1":
		return true
	case "0":
		return false
	default:
		p.fail(col, fmt.Errorf("invalid flag %q", p.row[col]))
		return false
	}
}
