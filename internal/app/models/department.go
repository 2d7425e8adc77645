package models

// Department represents an academic department. Many students, teachers and
// subjects hold a non-owning reference to it by id.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
