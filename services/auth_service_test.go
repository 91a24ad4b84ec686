package services

import (
	"context"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chitchat/domain/chat"
	"chitchat/mocks"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should persist the identity after a successful login", func(t *testing.T) {
		req := require.New(t)
		api := mocks.NewMockIRestAPI(ctrl)
		session := mocks.NewMockISessionStore(ctrl)
		svc := NewAuthService(logs.GetLoggerFromLevel(slog.LevelDebug), api, session)

		user := chat.User{ID: "u1", Name: "alice"}
		api.EXPECT().Login(gomock.Any(), "alice@example.com", "secret").Return(user, nil).Times(1)
		session.EXPECT().Save(user).Return(nil).Times(1)

		got, err := svc.Login(context.Background(), "alice@example.com", "secret")

		req.NoError(err)
		req.Equal(user, got)
	})

	t.Run("should still log in when the local save fails", func(t *testing.T) {
		req := require.New(t)
		api := mocks.NewMockIRestAPI(ctrl)
		session := mocks.NewMockISessionStore(ctrl)
		svc := NewAuthService(logs.GetLoggerFromLevel(slog.LevelDebug), api, session)

		user := chat.User{ID: "u1", Name: "alice"}
		api.EXPECT().Login(gomock.Any(), "alice@example.com", "secret").Return(user, nil).Times(1)
		session.EXPECT().Save(user).Return(stderrors.New("disk full")).Times(1)

		got, err := svc.Login(context.Background(), "alice@example.com", "secret")

		req.NoError(err)
		req.Equal("u1", got.ID)
	})

	t.Run("should not touch the session when the server refuses", func(t *testing.T) {
		req := require.New(t)
		api := mocks.NewMockIRestAPI(ctrl)
		session := mocks.NewMockISessionStore(ctrl)
		svc := NewAuthService(logs.GetLoggerFromLevel(slog.LevelDebug), api, session)

		api.EXPECT().Login(gomock.Any(), "alice@example.com", "wrong").
			Return(chat.User{}, stderrors.New("invalid credentials")).Times(1)
		session.EXPECT().Save(gomock.Any()).Times(0)

		_, err := svc.Login(context.Background(), "alice@example.com", "wrong")

		req.Error(err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should clear local credentials even when the server call fails", func(t *testing.T) {
		req := require.New(t)
		api := mocks.NewMockIRestAPI(ctrl)
		session := mocks.NewMockISessionStore(ctrl)
		svc := NewAuthService(logs.GetLoggerFromLevel(slog.LevelDebug), api, session)

		api.EXPECT().Logout(gomock.Any(), "u1").Return(stderrors.New("gone")).Times(1)
		session.EXPECT().Clear().Return(nil).Times(1)

		err := svc.Logout(context.Background(), "u1")

		req.Error(err)
	})
}
