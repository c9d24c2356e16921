package mongostore

import (
	"time"

	"bistro_boss/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// inlineExtra drops keys that would collide with a typed field of the document
func inlineExtra(extra model.Extra, fields ...string) bson.M {
	return bson.M(extra.Without(fields...))
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Photo        string             `bson:"photo,omitempty"`
	Role         string             `bson:"role,omitempty"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty"`
	Extra        bson.M             `bson:",inline"`
}

func (d userDoc) toModel() model.User {
	role := d.Role
	if role == "" {
		// Users created before roles existed carry no role field
		role = model.RoleDefault
	}
	return model.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Photo:        d.Photo,
		Role:         role,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		Extra:        model.Extra(d.Extra),
	}
}

type menuDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Recipe   string             `bson:"recipe"`
	Image    string             `bson:"image"`
}

func (d menuDoc) toModel() model.MenuItem {
	return model.MenuItem{ID: d.ID.Hex(), Name: d.Name, Category: d.Category, Price: d.Price, Recipe: d.Recipe, Image: d.Image}
}

type reviewDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Details string             `bson:"details"`
	Rating  float64            `bson:"rating"`
}

type cartDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	ItemID string             `bson:"itemId"`
	Email  string             `bson:"email"`
	Name   string             `bson:"name,omitempty"`
	Image  string             `bson:"image,omitempty"`
	Price  float64            `bson:"price,omitempty"`
	Extra  bson.M             `bson:",inline"`
}

func (d cartDoc) toModel() model.CartItem {
	return model.CartItem{ID: d.ID.Hex(), ItemID: d.ItemID, Email: d.Email, Name: d.Name, Image: d.Image, Price: d.Price, Extra: model.Extra(d.Extra)}
}

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transactionId"`
	Date          time.Time          `bson:"date"`
	CartIDs       []string           `bson:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemIds"`
	Status        string             `bson:"status"`
}

func (d paymentDoc) toModel() model.Payment {
	return model.Payment{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Price:         d.Price,
		TransactionID: d.TransactionID,
		Date:          d.Date,
		CartIDs:       d.CartIDs,
		MenuItemIDs:   d.MenuItemIDs,
		Status:        d.Status,
	}
}
