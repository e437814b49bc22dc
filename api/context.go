package api

import (
	"context"
	"errors"
)

type keyType string

const userIDKey keyType = "userID"

// ctxWithUserID adds a user's public id to the context
func ctxWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxGetUserID retrieves the user's public id from the context
func ctxGetUserID(ctx context.Context) (uint, error) {
	ctxValue := ctx.Value(userIDKey)
	if ctxValue == nil {
		return 0, errors.New("key not found in context")
	}
	userID, ok := ctxValue.(uint)
	if !ok {
		return 0, errors.New("value is not of type `uint`")
	}
	return userID, nil
}
