package feed

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"nilenavigator/models"
	"nilenavigator/store"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	storeTimeout  = 5 * time.Second
	localUserID   = "local"
	guestUsername = "Traveler"
)

// Handler serves the travel feed. Posts are stored as one list under the
// posts key.
type Handler struct {
	Store store.KV
	Now   func() time.Time

	mu sync.Mutex
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) load(ctx context.Context) []models.Post {
	return store.Load(ctx, h.Store, store.KeyPosts, samplePosts())
}

// loadForUpdate is load for the mutating handlers. Only a missing key falls
// back to the sample posts; any other read failure is returned.
func (h *Handler) loadForUpdate(ctx context.Context) ([]models.Post, error) {
	posts, err := store.LoadStrict[[]models.Post](ctx, h.Store, store.KeyPosts, nil)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = samplePosts()
	}
	return posts, nil
}

func respondLoadFailure(w http.ResponseWriter, err error) {
	log.Printf("feed: %v", err)
	utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load posts")
}

type postView struct {
	models.Post
	TimeAgo string `json:"timeAgo"`
}

// GET /api/feed/posts
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	now := h.now()
	posts := h.load(ctx)
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView{Post: p, TimeAgo: FormatTimeAgo(p.CreatedAt, now)})
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"posts": views})
}

type createPostRequest struct {
	Username string               `json:"username"`
	Content  string               `json:"content"`
	Images   []string             `json:"images"`
	Location *models.PostLocation `json:"location"`
}

// POST /api/feed/posts
//
// New posts go to the top of the feed. Badges are awarded from the post's
// location.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createPostRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Post content is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = store.Load(ctx, h.Store, store.KeyProfile, models.Profile{}).Name
	}
	if username == "" {
		username = guestUsername
	}

	post := models.Post{
		ID:        utils.GetUUID(),
		UserID:    localUserID,
		Username:  username,
		Content:   content,
		Images:    req.Images,
		Location:  req.Location,
		Comments:  []models.Comment{},
		CreatedAt: h.now(),
	}
	if post.Images == nil {
		post.Images = []string{}
	}
	if req.Location != nil && req.Location.Name != "" {
		post.Badges = EarnedBadges([]string{req.Location.Name})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	existing, err := h.loadForUpdate(ctx)
	if err != nil {
		respondLoadFailure(w, err)
		return
	}
	posts := append([]models.Post{post}, existing...)
	if !store.Save(ctx, h.Store, store.KeyPosts, posts) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save post")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// POST /api/feed/posts/:id/like
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	posts, err := h.loadForUpdate(ctx)
	if err != nil {
		respondLoadFailure(w, err)
		return
	}
	post, ok := ToggleLike(posts, ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	if !store.Save(ctx, h.Store, store.KeyPosts, posts) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save post")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"id": post.ID, "likes": post.Likes, "isLiked": post.Liked})
}

type commentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// POST /api/feed/posts/:id/comments
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req commentRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment is required")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = guestUsername
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	posts, err := h.loadForUpdate(ctx)
	if err != nil {
		respondLoadFailure(w, err)
		return
	}
	id := ps.ByName("id")
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		c := models.Comment{ID: utils.GetUUID(), Username: username, Content: content, CreatedAt: h.now()}
		posts[i].Comments = append(posts[i].Comments, c)
		if !store.Save(ctx, h.Store, store.KeyPosts, posts) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save comment")
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, c)
		return
	}
	utils.RespondWithError(w, http.StatusNotFound, "Post not found")
}

// GET /api/feed/badges?category=&rarity=
func ListBadges(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"badges": FilterBadges(q.Get("category"), q.Get("rarity"))})
}

type eligibilityRequest struct {
	Visited []string `json:"visited"`
}

// POST /api/feed/badges/:id/check
func CheckBadge(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := BadgeByID(id); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Badge not found")
		return
	}
	var req eligibilityRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"badge": id, "eligible": CheckBadgeEligibility(req.Visited, id)})
}
