package httpserver

import "storefront-gateway/internal/domain"

// cartView is the cart rendered for the client: line items plus the
// derived totals the navbar badge and the modal footer show.
type cartView struct {
	Items      []domain.LineItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

func toCartView(c domain.Cart) cartView {
	items := c.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return cartView{
		Items:      items,
		TotalItems: c.ItemCount(),
		TotalPrice: c.Total(),
	}
}

// sessionView is the navbar's account state.
type sessionView struct {
	LoggedIn    bool         `json:"logged_in"`
	IsAdmin     bool         `json:"is_admin"`
	DisplayName string       `json:"display_name,omitempty"`
	User        *domain.User `json:"user,omitempty"`
}

func toSessionView(s domain.Session) sessionView {
	return sessionView{
		LoggedIn:    s.LoggedIn(),
		IsAdmin:     s.Admin(),
		DisplayName: s.DisplayName(),
		User:        s.User,
	}
}
