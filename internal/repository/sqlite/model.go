package sqlite

// Task represents a row of the tasks table. The finished flag is stored as an
// INTEGER (0/1) and the added time as wide epoch seconds.
type Task struct {
	ID       int64
	Name     string
	Finished bool
	AddedAt  int64
}
