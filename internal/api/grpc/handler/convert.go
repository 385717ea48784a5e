package handler

import (
	notesv1 "github.com/dtroode/noteshare-server/api/notes/v1"
	"github.com/dtroode/noteshare-server/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func convertUser(u model.UserSummary) *notesv1.User {
	return &notesv1.User{
		Id:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	}
}

func convertNote(n model.Note) *notesv1.Note {
	return &notesv1.Note{
		Id:        n.ID,
		OwnerId:   n.OwnerID.String(),
		OwnerName: n.OwnerName,
		Title:     n.Title,
		Content:   n.Content,
		IsPublic:  n.IsPublic,
		CreatedAt: timestamppb.New(n.CreatedAt),
		UpdatedAt: timestamppb.New(n.UpdatedAt),
	}
}

func convertSessionToken(result model.LoginResult) *notesv1.SessionTokenResponse {
	return &notesv1.SessionTokenResponse{
		User:      convertUser(result.User),
		Token:     result.Token,
		ExpiresAt: timestamppb.New(result.Session.ExpiresAt),
	}
}
