package opportunity

type ListOpportunitiesQuery struct {
	Category string `form:"category"`
	PinCode  string `form:"pin_code"`
	Status   string `form:"status"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0" validate:"required,gt=0"`
	Notes  string  `json:"notes" validate:"max=2000"`
}
