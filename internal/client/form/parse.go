package form

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// Input is the raw text of the settings form.
type Input struct {
	TargetPercentage string
	ImportSetupID    string
	HourlyBatchCount string
}

// InputFrom renders settings as form text.
func InputFrom(s domain.BatchSettings) Input {
	return Input{
		TargetPercentage: strconv.FormatFloat(s.TargetPercentage, 'f', -1, 64),
		ImportSetupID:    strconv.FormatInt(s.ImportSetupID, 10),
		HourlyBatchCount: strconv.FormatFloat(s.HourlyBatchCount, 'f', -1, 64),
	}
}

// Labels of the form fields, keyed by field name.
var Labels = map[string]string{
	domain.FieldTargetPercentage: "Target percentage",
	domain.FieldImportSetupID:    "Import setup ID",
	domain.FieldHourlyBatchCount: "Hourly batch count",
}

// ParseInput coerces the form text into settings and validates them. It
// returns nil FieldErrors when the settings may be submitted.
func ParseInput(in Input) (domain.BatchSettings, FieldErrors) {
	errs := FieldErrors{}
	s := domain.DefaultBatchSettings()

	if v, ok := parseNumber(domain.FieldTargetPercentage, in.TargetPercentage, errs); ok {
		s.TargetPercentage = v
	}
	if v, ok := parseNumber(domain.FieldImportSetupID, in.ImportSetupID, errs); ok {
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			errs[domain.FieldImportSetupID] = "Must be an integer"
		} else {
			s.ImportSetupID = int64(v)
		}
	}
	if v, ok := parseNumber(domain.FieldHourlyBatchCount, in.HourlyBatchCount, errs); ok {
		s.HourlyBatchCount = v
	}

	// Fields that failed to parse hold valid defaults, so Validate only
	// reports on the values the user actually gave.
	var verr *domain.ValidationError
	if err := s.Validate(); errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			if _, seen := errs[fe.Field]; !seen {
				errs[fe.Field] = fe.Message
			}
		}
	}

	if len(errs) > 0 {
		return domain.BatchSettings{}, errs
	}
	return s, nil
}

func parseNumber(field, raw string, errs FieldErrors) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[field] = Labels[field] + " is required"
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs[field] = "Must be a number"
		return 0, false
	}
	return v, true
}
