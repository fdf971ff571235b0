package models

// BrandSegment is the contiguous column range of one brand in a horizontal
// multi-brand sheet. StartColumn <= EndColumn always holds; EndColumn is
// either the next segment's StartColumn-1 or StartColumn+3 for the last
// segment on the brand row.
type BrandSegment struct {
	BrandName   string             `json:"brand_name"`
	StartColumn int                `json:"start_column"`
	EndColumn   int                `json:"end_column"`
	HeaderRow   int                `json:"header_row"`
	Roles       map[int]ColumnRole `json:"roles"`
}

// HasRequiredRoles reports whether the segment resolved both a product code
// and a price column, which is what extraction needs.
func (s BrandSegment) HasRequiredRoles() bool {
	var hasCode, hasPrice bool
	for _, role := range s.Roles {
		switch role {
		case RoleProductCode:
			hasCode = true
		case RolePrice:
			hasPrice = true
		}
	}
	return hasCode && hasPrice
}

// ColumnWithRole returns the lowest column index carrying the given role,
// or -1 when the segment has none.
func (s BrandSegment) ColumnWithRole(role ColumnRole) int {
	found := -1
	for col, r := range s.Roles {
		if r == role && (found == -1 || col < found) {
			found = col
		}
	}
	return found
}

// Structure is the detector's verdict for one sheet. Segments that resolved
// no usable roles are retained for diagnostics; extraction skips them.
// Detection never fails hard: an unusable sheet yields IsValid=false and the
// caller falls back to manual column mapping.
type Structure struct {
	Layout       LayoutType     `json:"layout"`
	Segments     []BrandSegment `json:"segments"`
	DataStartRow int            `json:"data_start_row"`
	IsValid      bool           `json:"is_valid"`
}

// BrandNames lists detected brands in column order.
func (s Structure) BrandNames() []string {
	names := make([]string, 0, len(s.Segments))
	for _, seg := range s.Segments {
		names = append(names, seg.BrandName)
	}
	return names
}
