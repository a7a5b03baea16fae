package domain

type Passenger struct {
	ID    int64
	Name  string
	Email string
	Age   int
}
