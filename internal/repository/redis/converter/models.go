package converter

// VariantInfoRedisModel — остаток по одному варианту в кэшированной карточке.
type VariantInfoRedisModel struct {
	Label    string `json:"label"`
	Quantity int32  `json:"quantity"`
}

type ProductDetailRedisModel struct {
	ID            int64                   `json:"id"`
	Name          string                  `json:"name"`
	CategoryName  string                  `json:"category_name"`
	TypeName      string                  `json:"type_name"`
	Codes         []string                `json:"codes"`
	OriginalPrice int64                   `json:"original_price"`
	OfferPrice    int64                   `json:"offer_price"`
	Colors        []VariantInfoRedisModel `json:"colors"`
	Sizes         []VariantInfoRedisModel `json:"sizes"`
}
