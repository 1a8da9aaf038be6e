package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailDetails is the payload given to the email service; sent mails
// are also archived in the email_details collection.
type EmailDetails struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Recipient string             `bson:"recipient" json:"recipient"`
	Subject   string             `bson:"subject" json:"subject"`
	MsgBody   string             `bson:"msg_body" json:"msgBody"`
}
