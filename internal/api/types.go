package api

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token *string `json:"token,omitempty"`
}

type ErrorResponse struct {
	Errors *string `json:"errors,omitempty"`
}

type DonateRequest struct {
	Donor  string  `json:"donor"`
	Amount float64 `json:"amount"`
}

type CoinResponse struct {
	ID     string  `json:"id"`
	Value  float64 `json:"value"`
	Sprite string  `json:"sprite"`
}

type DonateResponse struct {
	Donor     string         `json:"donor"`
	Amount    float64        `json:"amount"`
	Allocated float64        `json:"allocated"`
	Remainder float64        `json:"remainder"`
	Coins     []CoinResponse `json:"coins"`
}

type BoardResponse struct {
	TotalValue   float64        `json:"totalValue"`
	DonatedTotal float64        `json:"donatedTotal"`
	Coins        []CoinResponse `json:"coins"`
}

type CampaignResponse struct {
	Phase   string `json:"phase"`
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Display string `json:"display"`
}

type CollectResponse struct {
	Collected bool `json:"collected"`
}
