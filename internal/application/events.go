package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/domain/event"
)

// JSONPublisher delivers a JSON-encoded message to the recipe event stream.
// Implemented by the RabbitMQ and Kafka publishers in pkg/helpers.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// publishRecipeEvent must only be called after commit. Failures are logged, never returned.
func publishRecipeEvent(ctx context.Context, pub JSONPublisher, logger *logrus.Logger, t event.RecipeEventType, recipeID int64) {
	if pub == nil || recipeID == 0 {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pub.PublishJSON(c, event.NewRecipeEvent(t, recipeID)); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{"recipe_id": recipeID, "type": t}).Warn("publish recipe event failed")
	}
}
