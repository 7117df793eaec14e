package handler

import (
	"BookShelf/internal/dto"
	"BookShelf/internal/service"
	"BookShelf/internal/session"
	"BookShelf/model"
)

// Handler carries every dependency the routes need. It is built once
// in main and passed to the router; there are no package globals.
type Handler struct {
	Users    *service.UserService
	Books    *service.BookService
	Sessions *session.Manager
}

// New builds a Handler.
func New(users *service.UserService, books *service.BookService, sessions *session.Manager) *Handler {
	return &Handler{
		Users:    users,
		Books:    books,
		Sessions: sessions,
	}
}

func toBookInfos(books []model.Book) []dto.BookInfo {
	infos := make([]dto.BookInfo, 0, len(books))
	for _, book := range books {
		infos = append(infos, dto.BookInfo{
			ID:       book.ID,
			Filename: book.Filename,
		})
	}
	return infos
}
