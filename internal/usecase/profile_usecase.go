package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"shop/internal/domain/model"
	"shop/internal/presenter"
	repo "shop/internal/repository"
)

type ProfileUsecase struct {
	tx        repo.TransactionManager
	hasher    PasswordHasher
	presenter *presenter.Presenter
}

func NewProfileUsecase(tx repo.TransactionManager, hasher PasswordHasher, p *presenter.Presenter) *ProfileUsecase {
	return &ProfileUsecase{tx: tx, hasher: hasher, presenter: p}
}

// POST /profile の入力。空のemailは変更しない
type ProfileInput struct {
	FullName string
	Email    string
	Phone    string
	Avatar   string
}

// 初回アクセスで作る
func (u *ProfileUsecase) Get(ctx context.Context, userID int64) (presenter.ProfileRecord, error) {
	if userID <= 0 {
		return presenter.ProfileRecord{}, unauthorized()
	}

	var out model.Profile
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := getProfile(ctx, r, userID)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return presenter.ProfileRecord{}, err
	}
	return u.presenter.Profile(out), nil
}

func (u *ProfileUsecase) Update(ctx context.Context, userID int64, in ProfileInput) (presenter.ProfileRecord, error) {
	if userID <= 0 {
		return presenter.ProfileRecord{}, unauthorized()
	}
	if err := validateProfile(in); err != nil {
		return presenter.ProfileRecord{}, err
	}

	var out model.Profile
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := getProfile(ctx, r, userID)
		if err != nil {
			return err
		}
		before, _ := json.Marshal(u.presenter.Profile(p))

		p.FullName = strings.TrimSpace(in.FullName)
		p.Phone = strings.TrimSpace(in.Phone)
		if in.Avatar != "" {
			p.Avatar = in.Avatar
		}
		if err := r.Profiles().Update(ctx, p); err != nil {
			return dbError(err)
		}

		email := strings.TrimSpace(in.Email)
		if email != "" && email != p.User.Email {
			err := r.Users().UpdateEmail(ctx, userID, email)
			if errors.Is(err, repo.ErrDuplicate) {
				return fieldError("email", "email is already in use")
			}
			if err != nil {
				return dbError(err)
			}
			p.User.Email = email
		}

		after, _ := json.Marshal(u.presenter.Profile(p))
		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  userID,
			Action:       model.AuditActionUpdateProfile,
			ResourceType: model.AuditResourceUser,
			ResourceID:   userID,
			BeforeJSON:   string(before),
			AfterJSON:    string(after),
		}); err != nil {
			return dbError(err)
		}

		out = p
		return nil
	})
	if err != nil {
		return presenter.ProfileRecord{}, err
	}
	return u.presenter.Profile(out), nil
}

// アップロードは扱わない。URLだけ保存
func (u *ProfileUsecase) SetAvatar(ctx context.Context, userID int64, avatarURL string) error {
	if userID <= 0 {
		return unauthorized()
	}
	if !isHTTPURL(avatarURL) {
		return fieldError("url", "enter a valid URL")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := getProfile(ctx, r, userID)
		if err != nil {
			return err
		}
		p.Avatar = avatarURL
		if err := r.Profiles().Update(ctx, p); err != nil {
			return dbError(err)
		}
		return nil
	})
}

// 変更後はtoken_versionを上げて既存トークンを無効にする
func (u *ProfileUsecase) ChangePassword(ctx context.Context, userID int64, password string) error {
	if userID <= 0 {
		return unauthorized()
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound()
		}
		if err != nil {
			return dbError(err)
		}

		if problems := passwordProblems(password, user.Email); len(problems) > 0 {
			return NewValidationError(map[string][]string{"password": problems})
		}

		hash, err := u.hasher.Hash(password)
		if err != nil {
			return dbError(err)
		}
		if err := r.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return dbError(err)
		}
		if err := r.Users().IncrementTokenVersion(ctx, userID); err != nil {
			return dbError(err)
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  userID,
			Action:       model.AuditActionChangePassword,
			ResourceType: model.AuditResourceUser,
			ResourceID:   userID,
		}); err != nil {
			return dbError(err)
		}
		return nil
	})
}

func getProfile(ctx context.Context, r repo.TxRepos, userID int64) (model.Profile, error) {
	p, err := r.Profiles().GetOrCreateByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Profile{}, notFound()
	}
	if err != nil {
		return model.Profile{}, dbError(err)
	}
	return p, nil
}

func validateProfile(in ProfileInput) error {
	fields := map[string][]string{}

	name := strings.TrimSpace(in.FullName)
	if name == "" {
		fields["fullName"] = []string{"this field is required"}
	} else if len([]rune(name)) > 200 {
		fields["fullName"] = []string{"ensure this field has no more than 200 characters"}
	}

	phone := strings.TrimSpace(in.Phone)
	if phone != "" && len([]rune(phone)) != 11 {
		fields["phone"] = []string{"ensure this field has exactly 11 characters"}
	}

	if in.Avatar != "" && !isHTTPURL(in.Avatar) {
		fields["avatar"] = []string{"enter a valid URL"}
	}

	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
