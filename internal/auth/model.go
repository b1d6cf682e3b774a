package auth

// Account roles. Owners manage restaurants and menus; customers
// browse, order and review.
const (
	RoleCustomer        = "CUSTOMER"
	RoleRestaurantOwner = "RESTAURANT_OWNER"
)

// User is the domain entity.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	IsActive  bool
}
