package mapper

import (
	"time"

	"github.com/daveshb/taskload/internal/adapter/http/dto"
	"github.com/daveshb/taskload/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		CC:        user.CC,
		Name:      user.Name,
		Tel:       user.Tel,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToLoginData(user domain.User) dto.LoginData {
	return dto.LoginData{
		User: dto.LoginUserItem{
			ID:    user.ID,
			CC:    user.CC,
			Name:  user.Name,
			Tel:   user.Tel,
			Email: user.Email,
		},
	}
}
