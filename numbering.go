package cotizador

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionSuffix matches the "-V{n}" version suffix of a quotation number.
var versionSuffix = regexp.MustCompile(`^(.+)-V(\d+)$`)

// FormatNumber formats a base quotation number from a series and a
// correlative, e.g. ("COT-2025", 1) -> "COT-2025-00001".
func FormatNumber(series string, correlative int) string {
	return fmt.Sprintf("%s-%05d", series, correlative)
}

// VersionNumber appends a version suffix to a base number,
// e.g. ("COT-2025-00001", 2) -> "COT-2025-00001-V2".
func VersionNumber(base string, version int) string {
	return fmt.Sprintf("%s-V%d", base, version)
}

// SplitNumber strips any version suffix from a quotation number and returns
// the base number and the version. A number without suffix is version 1.
func SplitNumber(number string) (base string, version int) {
	m := versionSuffix.FindStringSubmatch(number)
	if m == nil {
		return number, 1
	}
	v, err := strconv.Atoi(m[2])
	if err != nil || v < 1 {
		return number, 1
	}
	return m[1], v
}

// IssueNumber formats the next base number from the configured series and
// correlative, increments the correlative and persists the configuration
// immediately: a number is considered spent as soon as it is displayed, so
// an unclean shutdown over-allocates numbers rather than risking duplicates.
func (c *Config) IssueNumber(configPath string) (string, error) {
	number := FormatNumber(c.Series, c.Correlative)
	c.Correlative++
	if err := SaveConfig(configPath, c); err != nil {
		return "", fmt.Errorf("could not persist correlative after issuing %s: %w", number, err)
	}
	return number, nil
}

// NextVersion scans the history for all records sharing the given base
// number (a record without version suffix counts as version 1) and returns
// max+1, or 2 when no record matches. Unlike IssueNumber nothing is
// persisted: the result is recomputed from data, so an aborted revision
// self-heals instead of leaking a number.
func NextVersion(h *History, base string) int {
	max := 1
	for _, r := range h.Filter(func(r QuotationRecord) bool { return r.BaseNumber == base }) {
		if r.Version > max {
			max = r.Version
		}
	}
	return max + 1
}
