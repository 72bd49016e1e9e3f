package services

import "go.mongodb.org/mongo-driver/bson/primitive"

func parseObjectID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}
