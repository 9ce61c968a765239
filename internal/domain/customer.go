package domain

// Customer is a hotel guest on record.
type Customer struct {
	CustomerID int
	FirstName  string
	LastName   string
	Address    string
	City       string
	State      string
	Phone      string
}
