package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vahanbazar/internal/repositories/interfaces"
)

// findOptions translates a Page into driver find options. Default ordering is
// newest first.
func findOptions(page interfaces.Page) *options.FindOptions {
	opts := options.Find()
	if page.Skip > 0 {
		opts.SetSkip(page.Skip)
	}
	if page.Limit > 0 {
		opts.SetLimit(page.Limit)
	}

	field := page.SortField
	if field == "" {
		return opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}
	direction := -1
	if page.SortAsc {
		direction = 1
	}
	return opts.SetSort(bson.D{{Key: field, Value: direction}})
}
