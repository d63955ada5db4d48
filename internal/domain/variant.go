package domain

import "fmt"

// Variant selects the time-slot axis of the grid.
type Variant string

const (
	VariantWeekly Variant = "weekly"
	VariantDaily  Variant = "daily"
)

// ValidVariants lists all supported grid variants.
var ValidVariants = []Variant{
	VariantWeekly,
	VariantDaily,
}

// dayLabels are the column headers for the days-variant, Monday first.
var dayLabels = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ValidateVariant checks if a string is a valid grid variant.
func ValidateVariant(s string) (Variant, error) {
	v := Variant(s)
	for _, valid := range ValidVariants {
		if v == valid {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid variant %q: must be one of weekly, daily", s)
}

// Label returns a human-readable label.
func (v Variant) Label() string {
	switch v {
	case VariantWeekly:
		return "Weekly"
	case VariantDaily:
		return "Daily"
	default:
		return "Unknown"
	}
}

// HasFixedSlots reports whether the variant pins the slot count (the
// days-variant always shows one seven-day week).
func (v Variant) HasFixedSlots() bool {
	return v == VariantDaily
}

// SlotLabel returns the column header for a slot index: "W1".."W12" in the
// weeks-variant, "Mon".."Sun" in the days-variant.
func (v Variant) SlotLabel(i int) string {
	if v == VariantDaily {
		if i >= 0 && i < DaysPerWeek {
			return dayLabels[i]
		}
		return "?"
	}
	return fmt.Sprintf("W%d", i+1)
}
