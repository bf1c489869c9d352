// Package mongodb implements the repository interfaces on top of the
// MongoDB driver. Collection names mirror the entity names.
package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo/options"
)

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
