package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
}

// DI
func NewReviewUsecase(reviewRepo repo.ReviewRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo}
}

type CreateReviewInput struct {
	UserID    string
	ProductID string
	Rating    int
	Comment   string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

func (u *ReviewUsecase) CreateReview(ctx context.Context, in CreateReviewInput) (Envelope, error) {
	if uuid.Validate(in.UserID) != nil || uuid.Validate(in.ProductID) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid user ID or product ID")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Rating must be between 1 and 5")
	}

	r := model.Review{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := u.reviewRepo.Create(ctx, &r); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Review created successfully",
		Status:  http.StatusCreated,
		Success: true,
	}, nil
}

func (u *ReviewUsecase) ListReviews(ctx context.Context) (Envelope, error) {
	reviews, err := u.reviewRepo.ListAll(ctx)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(reviews) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No reviews found")
	}

	return Envelope{
		Message: "Reviews fetched successfully",
		Data:    reviews,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *ReviewUsecase) GetReview(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid review ID")
	}

	r, err := u.reviewRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Review not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Review fetched successfully",
		Data:    r,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *ReviewUsecase) UpdateReview(ctx context.Context, id string, in UpdateReviewInput) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid review ID")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Rating must be between 1 and 5")
	}

	r, err := u.reviewRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Review with ID %s not found", id))
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if in.Comment != nil {
		r.Comment = *in.Comment
	}

	if err := u.reviewRepo.Save(ctx, r); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Review updated successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// 物理削除
func (u *ReviewUsecase) DeleteReview(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid review ID")
	}

	err := u.reviewRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Review not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Review deleted successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *ReviewUsecase) ListProductReviews(ctx context.Context, productID string) (Envelope, error) {
	if uuid.Validate(productID) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(reviews) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No reviews found for this product")
	}

	return Envelope{
		Message: "Product reviews fetched successfully",
		Data:    reviews,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *ReviewUsecase) ListUserReviews(ctx context.Context, userID string) (Envelope, error) {
	if uuid.Validate(userID) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	reviews, err := u.reviewRepo.ListByUserID(ctx, userID)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(reviews) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No reviews found for this user")
	}

	return Envelope{
		Message: "User reviews fetched successfully",
		Data:    reviews,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}
