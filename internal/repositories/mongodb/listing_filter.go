package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/repositories/interfaces"
)

// buildListingFilter translates a ListingFilter into a mongo query document.
// Invalid object ids in id-valued fields produce an impossible match rather
// than an error, so a garbage query parameter returns an empty page.
func buildListingFilter(f interfaces.ListingFilter) bson.M {
	query := bson.M{}

	addObjectID(query, "brand.id", f.Brand)
	addObjectID(query, "branch.id", f.Branch)
	addObjectID(query, "dealer.id", f.DealerID)
	addObjectID(query, "seller.id", f.SellerID)

	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.IsFeatured != nil {
		query["is_featured"] = *f.IsFeatured
	}

	if f.InStock != nil {
		if *f.InStock {
			query["stock"] = bson.M{"$gt": 0}
		} else {
			query["stock"] = 0
		}
	}

	if f.HasDiscount != nil {
		if *f.HasDiscount {
			query["discount_type"] = bson.M{"$ne": nil}
		} else {
			query["discount_type"] = nil
		}
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	var clauses []bson.M
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"name": pattern},
			{"brand.name": pattern},
		}})
	}
	if f.ApprovedOnly {
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"type": "NEW"},
			{"approved": true},
		}})
	}
	switch len(clauses) {
	case 1:
		for k, v := range clauses[0] {
			query[k] = v
		}
	case 2:
		query["$and"] = clauses
	}

	return query
}

func addObjectID(query bson.M, field, hex string) {
	if hex == "" {
		return
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		query[field] = primitive.NilObjectID
		return
	}
	query[field] = id
}
