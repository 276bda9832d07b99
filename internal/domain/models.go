package domain

import "strconv"

// Pokemon is a single record of the remote collection. Values are snapshots
// returned by the service and are never modified by the browser.
type Pokemon struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BaseExperience *int   `json:"base_experience"`
	Height         *int   `json:"height"`
	Weight         *int   `json:"weight"`
	ImageURL       string `json:"image_url"`
}

// HasImage reports whether the record carries an image address
func (p Pokemon) HasImage() bool {
	return p.ImageURL != ""
}

// Page is one page of the collection as returned by the service
type Page struct {
	Data       []Pokemon `json:"data"`
	TotalPages int       `json:"total_pages"`
}

// FormatMetric renders a nullable magnitude, blank when absent
func FormatMetric(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
