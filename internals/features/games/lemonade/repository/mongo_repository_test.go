package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"finakihub_backend/internals/features/games/lemonade/model"
)

func TestSaveUpdateUsesServerTimestamp(t *testing.T) {
	u := saveUpdate(&model.LemonadeGame{UserID: "u1", CurrentMoney: 12.5, Score: 7})

	set := u["$set"].(bson.M)
	assert.NotContains(t, set, "user_id")
	assert.NotContains(t, set, "updated_at")
	assert.Equal(t, 12.5, set["current_money"])
	assert.Equal(t, []map[string]any{}, set["days_data"])
	assert.Equal(t, bson.M{"updated_at": true}, u["$currentDate"])
}
