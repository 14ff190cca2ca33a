// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentError is the predicate function for documenterror builders.
type DocumentError func(*sql.Selector)

// DocumentLineItem is the predicate function for documentlineitem builders.
type DocumentLineItem func(*sql.Selector)

// ModelTraining is the predicate function for modeltraining builders.
type ModelTraining func(*sql.Selector)
