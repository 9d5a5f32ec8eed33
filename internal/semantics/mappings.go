package semantics

// Mapping links a surface-level keyword to its visual vocabulary and the
// scenes that vocabulary tends to fit.
type Mapping struct {
	Category     string
	RelatedTerms []string
	VisualCues   []string
	SceneHints   []string
}

// keywordOrder fixes iteration order over the dictionary; maps alone would
// make analysis output nondeterministic.
var keywordOrder = []string{
	"金属", "皮革", "木质", "玻璃", "陶瓷", "布料",
	"现代", "复古", "简约", "奢华",
	"黑色", "白色", "金色",
	"户外", "办公", "家居", "运动",
}

var mappings = map[string]Mapping{
	"金属": {
		Category:     "material",
		RelatedTerms: []string{"metallic", "steel", "aluminum", "chrome"},
		VisualCues:   []string{"reflective surface", "metallic sheen", "polished finish"},
		SceneHints:   []string{"minimalist", "studio-white"},
	},
	"皮革": {
		Category:     "material",
		RelatedTerms: []string{"leather", "genuine leather", "faux leather"},
		VisualCues:   []string{"leather texture", "premium material", "natural grain"},
		SceneHints:   []string{"luxury", "lifestyle"},
	},
	"木质": {
		Category:     "material",
		RelatedTerms: []string{"wooden", "timber", "oak", "walnut"},
		VisualCues:   []string{"wood grain", "natural wood", "warm wood tones"},
		SceneHints:   []string{"lifestyle", "minimalist"},
	},
	"玻璃": {
		Category:     "material",
		RelatedTerms: []string{"glass", "crystal", "transparent"},
		VisualCues:   []string{"transparent material", "glass reflection", "crystal clear"},
		SceneHints:   []string{"minimalist", "luxury"},
	},
	"陶瓷": {
		Category:     "material",
		RelatedTerms: []string{"ceramic", "porcelain", "pottery"},
		VisualCues:   []string{"ceramic finish", "smooth glaze", "handcrafted feel"},
		SceneHints:   []string{"lifestyle", "studio-white"},
	},
	"布料": {
		Category:     "material",
		RelatedTerms: []string{"fabric", "textile", "cloth", "cotton"},
		VisualCues:   []string{"soft fabric texture", "textile detail", "natural draping"},
		SceneHints:   []string{"lifestyle", "studio-white"},
	},
	"现代": {
		Category:     "style",
		RelatedTerms: []string{"modern", "contemporary", "sleek"},
		VisualCues:   []string{"modern design", "clean lines", "contemporary aesthetic"},
		SceneHints:   []string{"minimalist", "studio-white"},
	},
	"复古": {
		Category:     "style",
		RelatedTerms: []string{"vintage", "retro", "classic", "antique"},
		VisualCues:   []string{"vintage style", "retro aesthetic", "classic elegance"},
		SceneHints:   []string{"lifestyle", "luxury"},
	},
	"简约": {
		Category:     "style",
		RelatedTerms: []string{"minimal", "simple", "clean"},
		VisualCues:   []string{"minimalist design", "simple elegance", "uncluttered"},
		SceneHints:   []string{"minimalist", "studio-white"},
	},
	"奢华": {
		Category:     "style",
		RelatedTerms: []string{"luxury", "premium", "high-end", "exclusive"},
		VisualCues:   []string{"luxury aesthetic", "premium quality", "opulent feel"},
		SceneHints:   []string{"luxury"},
	},
	"黑色": {
		Category:     "color",
		RelatedTerms: []string{"black", "dark", "ebony"},
		VisualCues:   []string{"deep black", "dark tone", "noir aesthetic"},
		SceneHints:   []string{"luxury", "minimalist"},
	},
	"白色": {
		Category:     "color",
		RelatedTerms: []string{"white", "pure", "ivory"},
		VisualCues:   []string{"pure white", "clean white", "bright and clean"},
		SceneHints:   []string{"studio-white", "minimalist"},
	},
	"金色": {
		Category:     "color",
		RelatedTerms: []string{"gold", "golden", "champagne"},
		VisualCues:   []string{"golden tone", "luxurious gold", "warm gold shimmer"},
		SceneHints:   []string{"luxury", "seasonal"},
	},
	"户外": {
		Category:     "usage",
		RelatedTerms: []string{"outdoor", "adventure", "camping", "hiking"},
		VisualCues:   []string{"outdoor setting", "adventure lifestyle", "nature backdrop"},
		SceneHints:   []string{"outdoor"},
	},
	"办公": {
		Category:     "usage",
		RelatedTerms: []string{"office", "work", "professional", "business"},
		VisualCues:   []string{"office environment", "professional setting", "workspace"},
		SceneHints:   []string{"minimalist", "lifestyle"},
	},
	"家居": {
		Category:     "usage",
		RelatedTerms: []string{"home", "living", "interior", "domestic"},
		VisualCues:   []string{"home setting", "living space", "cozy interior"},
		SceneHints:   []string{"lifestyle"},
	},
	"运动": {
		Category:     "usage",
		RelatedTerms: []string{"sports", "athletic", "fitness", "active"},
		VisualCues:   []string{"athletic style", "dynamic energy", "active lifestyle"},
		SceneHints:   []string{"outdoor", "lifestyle"},
	},
}
