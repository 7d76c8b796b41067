// Package validate holds the field validators applied when lawyers and cases
// are registered. Each validator checks one format rule; Lawyer and Case
// aggregate every violation for a record into a single error so the caller
// can report all problems at once.
//
// Functions:
//   - Email(s) error: RFC-lite address check
//   - Phone(s) error: US 10-digit number, separators tolerated
//   - BarNumber(s) error: 6-15 alphanumeric characters, case-insensitive
//   - CaseNumber(s) error: docket format XX-YYYY-NNNNNN
//   - YearsExperience(n) error: 0 to 70 inclusive
//   - Lawyer(l) error / Case(c) error: aggregated record validation
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

var (
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneStripRE = regexp.MustCompile(`[\s\-\(\)\.]`)
	phoneRE      = regexp.MustCompile(`^\d{10}$`)
	barNumberRE  = regexp.MustCompile(`^[A-Z0-9]{6,15}$`)
	caseNumberRE = regexp.MustCompile(`^[A-Z]{2,4}-\d{4}-\d{4,8}$`)
)

// Email checks the address format.
func Email(s string) error {
	if !emailRE.MatchString(s) {
		return errors.New("invalid email format")
	}
	return nil
}

// Phone checks for a 10-digit US number after stripping common separators.
func Phone(s string) error {
	cleaned := phoneStripRE.ReplaceAllString(s, "")
	cleaned = strings.TrimPrefix(cleaned, "+1")
	if !phoneRE.MatchString(cleaned) {
		return errors.New("invalid phone number format")
	}
	return nil
}

// BarNumber checks for 6-15 alphanumeric characters. Lowercase input is
// accepted; storage normalization is the caller's concern.
func BarNumber(s string) error {
	if !barNumberRE.MatchString(strings.ToUpper(s)) {
		return errors.New("invalid bar number format (should be 6-15 alphanumeric characters)")
	}
	return nil
}

// CaseNumber checks the docket format, e.g. CV-2024-001234.
func CaseNumber(s string) error {
	if !caseNumberRE.MatchString(s) {
		return errors.New("invalid case number format (should be XX-YYYY-NNNNNN)")
	}
	return nil
}

// YearsExperience checks the plausible career-length range.
func YearsExperience(n int) error {
	if n < 0 || n > 70 {
		return errors.New("years of experience must be between 0 and 70")
	}
	return nil
}

// Lawyer validates a lawyer record before registration. All violations are
// aggregated into one error, or nil when the record is valid.
func Lawyer(l *domain.Lawyer) error {
	var errs []string

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", l.Name},
		{"bar_number", l.BarNumber},
		{"practice_areas", l.PracticeAreas},
		{"jurisdiction", l.Jurisdiction},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	if l.BarNumber != "" {
		if err := BarNumber(l.BarNumber); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if l.Email != "" {
		if err := Email(l.Email); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if l.Phone != "" {
		if err := Phone(l.Phone); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := YearsExperience(l.YearsExperience); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Case validates a case record before creation. All violations are aggregated
// into one error, or nil when the record is valid.
func Case(c *domain.LegalCase) error {
	var errs []string

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"case_number", c.CaseNumber},
		{"title", c.Title},
		{"case_type", c.CaseType},
		{"jurisdiction", c.Jurisdiction},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	if c.CaseNumber != "" {
		if err := CaseNumber(c.CaseNumber); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
