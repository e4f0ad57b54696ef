// Package query holds the sqlq table factories generated from the model
// structs. Run go generate ./model after changing a model.
package query
