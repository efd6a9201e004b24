package recommend

// Option is one selectable preference chip, carrying the keywords it
// contributes to the scorer.
type Option struct {
	ID       string
	Label    string
	Keywords []string
}

// Category groups options under a heading on the preferences screen.
type Category struct {
	ID      string
	Title   string
	Options []Option
}

type Catalog []Category

// DefaultCatalog is the production preference table. Keywords are matched as
// lower-cased substrings against restaurant name, description and address,
// so they mix Vietnamese (with and without diacritics) and English forms.
var DefaultCatalog = Catalog{
	{
		ID:    "cuisine",
		Title: "Loại ẩm thực",
		Options: []Option{
			{ID: "vietnam", Label: "Việt Nam", Keywords: []string{"việt", "vietnam"}},
			{ID: "euro_asian", Label: "Âu - Á", Keywords: []string{"âu", "á", "âu - á"}},
			{ID: "seafood", Label: "Hải sản", Keywords: []string{"hải sản", "hải sản tươi", "seafood"}},
			{ID: "bbq", Label: "BBQ / Nướng", Keywords: []string{"bbq", "nướng", "grill"}},
			{ID: "cafe", Label: "Cafe / Tráng miệng", Keywords: []string{"cafe", "cà phê", "tráng miệng"}},
		},
	},
	{
		ID:    "vibe",
		Title: "Không khí / Dịp",
		Options: []Option{
			{ID: "family", Label: "Gia đình", Keywords: []string{"gia đình", "gia dinh"}},
			{ID: "date", Label: "Hẹn hò", Keywords: []string{"hẹn hò", "hen ho", "lãng mạn"}},
			{ID: "friends", Label: "Nhóm bạn", Keywords: []string{"nhóm", "nhom", "bạn bè"}},
			{ID: "luxury", Label: "Sang trọng", Keywords: []string{"sang", "trọng", "cao cấp"}},
			{ID: "casual", Label: "Bình dân", Keywords: []string{"bình dân", "binh dan"}},
			{ID: "view", Label: "View đẹp", Keywords: []string{"view", "sông", "biển", "ven biển", "lãng mạn", "bến"}},
		},
	},
	{
		ID:    "area",
		Title: "Khu vực",
		Options: []Option{
			{ID: "hcm", Label: "TP.HCM", Keywords: []string{"TP.HCM", "Lê Lợi", "Bến Bạch Đằng", "Quận 1", "HCM"}},
			{ID: "hanoi", Label: "Hà Nội", Keywords: []string{"Hà Nội", "Ha Noi", "Yên Lãng", "Yen Lang"}},
			{ID: "danang", Label: "Đà Nẵng", Keywords: []string{"Đà Nẵng", "Da Nang", "Võ Nguyên Giáp", "Sơn Trà", "Son Tra"}},
		},
	},
}
