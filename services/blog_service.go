package services

import (
	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BlogService is the single writer for blog content. Every mutation
// validates its input before touching storage, maintains the reciprocal
// alternate-slug links across a translation pair, and returns errors from
// the errs taxonomy only; raw filesystem errors never cross this boundary.
//
// Mutations run without locking. Two concurrent writers targeting the same
// slug race at the filesystem and the last write wins, matching the
// store's unconditional-overwrite policy; acceptable for the single-admin
// usage this serves.
type BlogService struct {
	store  PostStore
	logger zerolog.Logger
}

func NewBlogService(store PostStore) *BlogService {
	return &BlogService{
		store:  store,
		logger: log.With().Str("serviceName", "blogService").Logger(),
	}
}

// GroupUpdate describes an edit of both halves of a translation pair as
// one unit. Each side is tri-state: nil payload with the Remove flag unset
// leaves that side untouched, a payload replaces it, and the Remove flag
// deletes it.
type GroupUpdate struct {
	EN       *models.BlogPostPayload
	TR       *models.BlogPostPayload
	RemoveEN bool
	RemoveTR bool
}

// CreatePost validates the payload and persists a new post. The slug must
// not be taken.
func (s *BlogService) CreatePost(payload *models.BlogPostPayload) (string, error) {
	if err := validatePayload(payload); err != nil {
		return "", err
	}
	existing, err := s.store.FindBySlug(payload.Slug)
	if err != nil {
		return "", errs.NewStorageError("create", "post", err)
	}
	if existing != nil {
		return "", errs.NewAlreadyExists("a post with this slug")
	}
	if err := s.store.Save(payload.Post()); err != nil {
		s.logger.Error().Err(err).Str("slug", payload.Slug).Msg("Failed to write post")
		return "", errs.NewStorageError("create", "post", err)
	}
	return payload.Slug, nil
}

// UpdatePost overwrites the post at oldSlug, renaming it when the payload
// carries a different slug.
func (s *BlogService) UpdatePost(oldSlug string, payload *models.BlogPostPayload) (string, error) {
	if err := validateSlug(oldSlug); err != nil {
		return "", err
	}
	if err := validatePayload(payload); err != nil {
		return "", err
	}
	existing, err := s.store.FindBySlug(oldSlug)
	if err != nil {
		return "", errs.NewStorageError("update", "post", err)
	}
	if existing == nil {
		return "", errs.NewNotFound("post")
	}

	if payload.Slug != oldSlug {
		conflict, err := s.store.FindBySlug(payload.Slug)
		if err != nil {
			return "", errs.NewStorageError("update", "post", err)
		}
		if conflict != nil {
			return "", errs.NewSlugConflict("a post with the new slug already exists")
		}
		// Write-then-delete, in that order: a crash between the two steps
		// leaves a stale duplicate under the old slug but never loses the
		// new content. Known limitation, no rollback.
		if err := s.store.Save(payload.Post()); err != nil {
			return "", errs.NewStorageError("update", "post", err)
		}
		if err := s.store.Delete(oldSlug); err != nil {
			return "", errs.NewStorageError("update", "post", err)
		}
		return payload.Slug, nil
	}

	if err := s.store.Save(payload.Post()); err != nil {
		return "", errs.NewStorageError("update", "post", err)
	}
	return payload.Slug, nil
}

// DeletePost removes the post at slug. Deleting an absent post succeeds.
func (s *BlogService) DeletePost(slug string) error {
	if err := validateSlug(slug); err != nil {
		return err
	}
	if err := s.store.Delete(slug); err != nil {
		return errs.NewStorageError("delete", "post", err)
	}
	return nil
}

// UpdateGroup edits a translation pair as one logical unit. The steps run
// in a fixed order -- removals, then writes -- and each step that commits
// stays committed even if a later step fails; there is no rollback.
// Returns the group's resulting primary slug.
func (s *BlogService) UpdateGroup(primarySlug string, update GroupUpdate) (string, error) {
	if err := validateSlug(primarySlug); err != nil {
		return "", err
	}
	group, err := groupForSlug(s.store, primarySlug)
	if err != nil {
		return "", errs.NewStorageError("update", "group", err)
	}
	if group == nil {
		return "", errs.NewNotFound("group")
	}

	// Validate incoming payloads up front; each payload's own locale must
	// match the slot it was supplied for, so a caller cannot accidentally
	// swap sides.
	if update.EN != nil {
		if err := validatePayload(update.EN); err != nil {
			err.Field = "en"
			return "", err
		}
		if update.EN.Locale != models.LocaleEN {
			return "", errs.NewInvalidFieldError("en.locale", "EN payload must have locale en")
		}
	}
	if update.TR != nil {
		if err := validatePayload(update.TR); err != nil {
			err.Field = "tr"
			return "", err
		}
		if update.TR.Locale != models.LocaleTR {
			return "", errs.NewInvalidFieldError("tr.locale", "TR payload must have locale tr")
		}
	}

	// Removals first. When one side goes away, the surviving partner is
	// rewritten with its linkage fields cleared so it never points at a
	// deleted slug.
	if update.RemoveEN && group.EN != nil {
		partner := group.TR
		if update.RemoveTR {
			// Both sides go; never resurrect the other member by
			// rewriting it as a survivor.
			partner = nil
		}
		if err := s.removeMember(group.EN, partner); err != nil {
			return "", err
		}
	}
	if update.RemoveTR && group.TR != nil {
		partner := group.EN
		if update.RemoveEN {
			partner = nil
		}
		if err := s.removeMember(group.TR, partner); err != nil {
			return "", err
		}
	}

	if update.EN != nil {
		trSlug := s.partnerSlug(update.TR, update.RemoveTR, group.TR)
		if err := s.writeMember(update.EN, models.LocaleTR, trSlug, group.EN); err != nil {
			return "", err
		}
	}
	if update.TR != nil {
		enSlug := s.partnerSlug(update.EN, update.RemoveEN, group.EN)
		if err := s.writeMember(update.TR, models.LocaleEN, enSlug, group.TR); err != nil {
			return "", err
		}
	}

	// Primary slug of whatever remains: the English member if one still
	// exists, else the Turkish member, else the original identifier (both
	// sides removed in one call is permitted).
	switch {
	case update.EN != nil:
		return update.EN.Slug, nil
	case group.EN != nil && !update.RemoveEN:
		return group.EN.Slug, nil
	case update.TR != nil:
		return update.TR.Slug, nil
	case group.TR != nil && !update.RemoveTR:
		return group.TR.Slug, nil
	default:
		return primarySlug, nil
	}
}

// removeMember deletes one side of a group and, when the partner remains,
// rewrites it without its alternate linkage.
func (s *BlogService) removeMember(member, partner *models.BlogPost) error {
	if err := s.store.Delete(member.Slug); err != nil {
		return errs.NewStorageError("update", "group", err)
	}
	if partner != nil {
		survivor := *partner
		survivor.AlternateLocale = ""
		survivor.AlternateSlug = ""
		if err := s.store.Save(&survivor); err != nil {
			return errs.NewStorageError("update", "group", err)
		}
	}
	return nil
}

// partnerSlug resolves the slug one side should link to: the slug supplied
// for the other side in this same call, else the existing member's slug
// unless that side is being removed.
func (s *BlogService) partnerSlug(otherPayload *models.BlogPostPayload, otherRemoved bool, otherCurrent *models.BlogPost) string {
	if otherPayload != nil {
		return otherPayload.Slug
	}
	if !otherRemoved && otherCurrent != nil {
		return otherCurrent.Slug
	}
	return ""
}

// writeMember builds the full record for one side with its alternate
// linkage set (or cleared when no partner remains) and persists it,
// handling a slug rename with a conflict check and write-then-delete.
func (s *BlogService) writeMember(payload *models.BlogPostPayload, partnerLocale models.Locale, partnerSlug string, current *models.BlogPost) error {
	post := payload.Post()
	post.AlternateLocale = ""
	post.AlternateSlug = ""
	if partnerSlug != "" {
		post.AlternateLocale = partnerLocale
		post.AlternateSlug = partnerSlug
	}

	renamed := current != nil && post.Slug != current.Slug
	if renamed {
		conflict, err := s.store.FindBySlug(post.Slug)
		if err != nil {
			return errs.NewStorageError("update", "group", err)
		}
		if conflict != nil {
			return errs.NewSlugConflict("a post with the new slug already exists")
		}
	}
	if err := s.store.Save(post); err != nil {
		return errs.NewStorageError("update", "group", err)
	}
	if renamed {
		if err := s.store.Delete(current.Slug); err != nil {
			return errs.NewStorageError("update", "group", err)
		}
	}
	return nil
}

// DeleteGroup removes every member of the group. Each deletion is
// independently best-effort: a file already gone is fine, and a failure on
// one side does not stop cleanup of the other.
func (s *BlogService) DeleteGroup(primarySlug string) error {
	if err := validateSlug(primarySlug); err != nil {
		return err
	}
	group, err := groupForSlug(s.store, primarySlug)
	if err != nil {
		return errs.NewStorageError("delete", "group", err)
	}
	if group == nil {
		return errs.NewNotFound("group")
	}
	if group.EN != nil {
		if err := s.store.Delete(group.EN.Slug); err != nil {
			s.logger.Warn().Err(err).Str("slug", group.EN.Slug).Msg("Failed to delete group member")
		}
	}
	if group.TR != nil {
		if err := s.store.Delete(group.TR.Slug); err != nil {
			s.logger.Warn().Err(err).Str("slug", group.TR.Slug).Msg("Failed to delete group member")
		}
	}
	return nil
}
