package usecase

import (
	"strings"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/pagination"
)

type CommentUseCase interface {
	ListVideoComments(videoID string, page pagination.Params) (*entity.CommentPage, error)
	AddComment(videoID, ownerID, content string) (*entity.CommentView, error)
	GetComment(commentID string) (*entity.CommentView, error)
	UpdateComment(commentID, userID, content string) (*entity.CommentView, error)
	DeleteComment(commentID, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	viewRepo    persistent.ViewRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	viewRepo persistent.ViewRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		viewRepo:    viewRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) ListVideoComments(videoID string, page pagination.Params) (*entity.CommentPage, error) {
	if err := uc.requireVideo(videoID); err != nil {
		return nil, err
	}

	comments, count, err := uc.viewRepo.VideoComments(videoID, page.Limit, page.Offset())
	if err != nil {
		return nil, internalError(uc.logger, "Failed to list comments", err)
	}

	return &entity.CommentPage{
		Comments: comments,
		Pages:    pagination.TotalPages(count, page.Limit),
		Count:    count,
	}, nil
}

func (uc *commentUseCase) AddComment(videoID, ownerID, content string) (*entity.CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" || strings.TrimSpace(videoID) == "" {
		return nil, apperror.Validation("Content or videoId is missing!")
	}
	if err := uc.requireVideo(videoID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{VideoID: videoID, OwnerID: ownerID, Content: content}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, internalError(uc.logger, "Failed to create comment", err)
	}

	return uc.withOwner(comment.ID)
}

func (uc *commentUseCase) GetComment(commentID string) (*entity.CommentView, error) {
	if strings.TrimSpace(commentID) == "" {
		return nil, apperror.Validation("CommentId is missing!")
	}
	if !validID(commentID) {
		return nil, apperror.NotFound("Comment data not found!")
	}

	view, err := uc.viewRepo.CommentDetail(commentID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load comment", err, apperror.NotFound("Comment data not found!"))
	}
	return view, nil
}

func (uc *commentUseCase) UpdateComment(commentID, userID, content string) (*entity.CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" || strings.TrimSpace(commentID) == "" {
		return nil, apperror.Validation("CommentId or content is missing!")
	}

	comment, err := uc.ownedComment(commentID, userID, "Invalid comment data!")
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, internalError(uc.logger, "Failed to update comment", err)
	}

	return uc.withOwner(comment.ID)
}

func (uc *commentUseCase) DeleteComment(commentID, userID string) error {
	if strings.TrimSpace(commentID) == "" {
		return apperror.Validation("CommentId is missing!")
	}
	if _, err := uc.ownedComment(commentID, userID, "Comment data not found!"); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		return lookupError(uc.logger, "Failed to delete comment", err, apperror.NotFound("Comment data not found!"))
	}
	return nil
}

func (uc *commentUseCase) requireVideo(videoID string) error {
	if !validID(videoID) {
		return apperror.NotFound("Invalid videoId!")
	}
	found, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return internalError(uc.logger, "Failed to check video", err)
	}
	if !found {
		return apperror.NotFound("Invalid videoId!")
	}
	return nil
}

func (uc *commentUseCase) ownedComment(commentID, userID, notFound string) (*entity.Comment, error) {
	if !validID(commentID) {
		return nil, apperror.NotFound(notFound)
	}
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load comment", err, apperror.NotFound(notFound))
	}
	if comment.OwnerID != userID {
		return nil, apperror.Forbidden("Unauthorized access!")
	}
	return comment, nil
}

func (uc *commentUseCase) withOwner(commentID string) (*entity.CommentView, error) {
	view, err := uc.viewRepo.CommentWithOwner(commentID)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to load comment owner", err)
	}
	return view, nil
}
