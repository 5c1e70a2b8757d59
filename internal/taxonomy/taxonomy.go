package taxonomy

import "strings"

// Category là nhóm nội dung cấp 1 của site
type Category string

const (
	CategoryEnergy      Category = "energy"
	CategoryMetals      Category = "metals"
	CategoryAgriculture Category = "agriculture"
	CategoryStrategies  Category = "strategies"
)

// categories giữ thứ tự hiển thị cố định trên navigation
var categories = []Category{
	CategoryEnergy,
	CategoryMetals,
	CategoryAgriculture,
	CategoryStrategies,
}

// subcategories map mỗi category sang danh sách subcategory slug, theo thứ tự hiển thị
var subcategories = map[Category][]string{
	CategoryEnergy:      {"oil", "natural-gas", "power"},
	CategoryMetals:      {"gold", "silver", "copper", "nickel", "iron-ore", "rare-earth"},
	CategoryAgriculture: {"wheat", "coffee", "sugar", "soybeans", "corn"},
	CategoryStrategies:  {"macro-focus", "curve-analysis", "commodity-specific", "spread-analysis"},
}

// Categories trả về danh sách category slug theo thứ tự hiển thị
func Categories() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// SubcategoriesFor trả về subcategory slugs của một category, theo thứ tự hiển thị
// Category không tồn tại → nil
func SubcategoriesFor(category string) []string {
	subs, ok := subcategories[Category(category)]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// IsValidCategory kiểm tra category slug có tồn tại không
func IsValidCategory(category string) bool {
	_, ok := subcategories[Category(category)]
	return ok
}

// IsValidPair kiểm tra subcategory có thuộc category không
func IsValidPair(category, subcategory string) bool {
	for _, s := range subcategories[Category(category)] {
		if s == subcategory {
			return true
		}
	}
	return false
}

// DisplayName chuyển slug thành tên hiển thị:
// tách theo dấu gạch ngang, viết hoa chữ đầu mỗi từ
// Các slug họ metals được gộp về nhãn "Metals"
func DisplayName(slug string) string {
	switch slug {
	case "metals", "precious-metals", "base-metals":
		return "Metals"
	}

	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
