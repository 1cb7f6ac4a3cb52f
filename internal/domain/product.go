package domain

// Status enumerates the lifecycle of a product row through the generation
// pipeline.
type Status string

const (
	StatusPending        Status = "Pending"
	StatusSkippedNoImage Status = "Skipped (No Image)"
	StatusGenerated      Status = "Generated"
)

// Column names as they appear in uploaded spreadsheets and in the
// product_listings table. The odd spellings ("Finish/ Style") are the
// operators' own and must match exactly.
const (
	ColSKU         = "SKU"
	ColName        = "Name"
	ColBrand       = "Brand"
	ColSize        = "Size"
	ColColour      = "Colour"
	ColCategory    = "Category"
	ColFinishStyle = "Finish/ Style"
	ColFeature     = "Feature"
	ColCare        = "Care Instructions"
	ColComposition = "Composition"
	ColWidth       = "Product Width"
	ColLength      = "Product Length"
	ColHeight      = "Product Height"
	ColImageLink   = "Image Link 1"
	ColIncludes    = "Includes"
	ColTitle1      = "Title 1"
	ColTitle2      = "Title 2"
	ColTitle3      = "Title 3"
	ColTitle4      = "Title 4"
	ColDescription = "Description"
	ColStatus      = "Status"
)

// AttributeColumns is the fixed set of descriptive attributes, in the order
// they are rendered into prompts and exported.
var AttributeColumns = []string{
	ColSize,
	ColColour,
	ColCategory,
	ColFinishStyle,
	ColFeature,
	ColCare,
	ColComposition,
	ColWidth,
	ColLength,
	ColHeight,
}

// ProductRow is one normalized input record. Identity is (SKU, Name); rows
// sharing (Brand, Name) are generated together as one group.
type ProductRow struct {
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	Brand            string `json:"brand"`
	Size             string `json:"size,omitempty"`
	Colour           string `json:"colour,omitempty"`
	Category         string `json:"category,omitempty"`
	FinishStyle      string `json:"finish_style,omitempty"`
	Feature          string `json:"feature,omitempty"`
	CareInstructions string `json:"care_instructions,omitempty"`
	Composition      string `json:"composition,omitempty"`
	Width            string `json:"width,omitempty"`
	Length           string `json:"length,omitempty"`
	Height           string `json:"height,omitempty"`
	Includes         string `json:"includes,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	Status           Status `json:"status"`
}

// Attribute returns the value of a descriptive attribute column by its
// spreadsheet name. Unknown columns return the empty string.
func (r *ProductRow) Attribute(col string) string {
	switch col {
	case ColSize:
		return r.Size
	case ColColour:
		return r.Colour
	case ColCategory:
		return r.Category
	case ColFinishStyle:
		return r.FinishStyle
	case ColFeature:
		return r.Feature
	case ColCare:
		return r.CareInstructions
	case ColComposition:
		return r.Composition
	case ColWidth:
		return r.Width
	case ColLength:
		return r.Length
	case ColHeight:
		return r.Height
	}
	return ""
}

// SetField assigns a cell value to the struct field backing the named column.
// Columns outside the expected schema are ignored.
func (r *ProductRow) SetField(col, value string) {
	switch col {
	case ColSKU:
		r.SKU = value
	case ColName:
		r.Name = value
	case ColBrand:
		r.Brand = value
	case ColSize:
		r.Size = value
	case ColColour:
		r.Colour = value
	case ColCategory:
		r.Category = value
	case ColFinishStyle:
		r.FinishStyle = value
	case ColFeature:
		r.Feature = value
	case ColCare:
		r.CareInstructions = value
	case ColComposition:
		r.Composition = value
	case ColWidth:
		r.Width = value
	case ColLength:
		r.Length = value
	case ColHeight:
		r.Height = value
	case ColIncludes:
		r.Includes = value
	case ColImageLink:
		r.ImageURL = value
	}
}

// ProductGroup is the unit of generation: all rows sharing (Brand, Name), in
// original upload order.
type ProductGroup struct {
	Brand string
	Name  string
	Rows  []ProductRow
}

// Representative returns the group's first row, the canonical source of the
// attribute values shared by the whole group.
func (g *ProductGroup) Representative() ProductRow {
	return g.Rows[0]
}

// RepresentativeImage returns the first non-empty image URL among the group's
// rows, or "" if the group has none and must be skipped.
func (g *ProductGroup) RepresentativeImage() string {
	for _, row := range g.Rows {
		if row.ImageURL != "" {
			return row.ImageURL
		}
	}
	return ""
}
