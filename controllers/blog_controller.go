package controllers

import (
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gin-gonic/gin"

	"github.com/c13-isotope/landingpage/database"
	"github.com/c13-isotope/landingpage/models"
	"github.com/c13-isotope/landingpage/utils"
)

const blogCachePrefix = "blog:slug:"

type BlogController struct {
	cacheTTL time.Duration
}

func NewBlogController(cacheTTL time.Duration) *BlogController {
	return &BlogController{cacheTTL: cacheTTL}
}

func blogCollection() *mongo.Collection {
	return utils.GetDB().Collection(database.BlogCollection)
}

type blogListResponse struct {
	Items      []models.BlogPost `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int64             `json:"totalPages"`
	Q          *string           `json:"q,omitempty"`
}

// GET /api/blog/public/list?page&limit&tag
func (bc *BlogController) ListPublic(c *gin.Context) {
	page := utils.ParsePage(c.Query("page"))
	limit := utils.ParseLimit(c.Query("limit"), 10, 100)
	skip := int64((page - 1) * limit)

	filter := bson.M{"status": models.StatusPublished}
	if tag := c.Query("tag"); tag != "" {
		filter["tags"] = strings.ToLower(tag)
	}

	col := blogCollection()
	total, err := col.CountDocuments(c, filter)
	if err != nil {
		utils.LogError(err, "blog list count")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))
	cur, err := col.Find(c, filter, opts)
	if err != nil {
		utils.LogError(err, "blog list find")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := []models.BlogPost{}
	if err := cur.All(c, &items); err != nil {
		utils.LogError(err, "blog list decode")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blogListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: utils.TotalPages(total, limit),
	})
}

// GET /api/blog/public/search?q&page&limit
func (bc *BlogController) SearchPublic(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		empty := ""
		c.JSON(http.StatusOK, blogListResponse{
			Items:      []models.BlogPost{},
			Total:      0,
			Page:       1,
			TotalPages: 1,
			Q:          &empty,
		})
		return
	}

	page := utils.ParsePage(c.Query("page"))
	limit := utils.ParseLimit(c.Query("limit"), 10, 100)
	skip := int64((page - 1) * limit)

	filter := bson.M{
		"$text":  bson.M{"$search": q},
		"status": models.StatusPublished,
	}

	col := blogCollection()
	total, err := col.CountDocuments(c, filter)
	if err != nil {
		utils.LogError(err, "blog search count")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "publishedAt", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(int64(limit))
	cur, err := col.Find(c, filter, opts)
	if err != nil {
		utils.LogError(err, "blog search find")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := []models.BlogPost{}
	if err := cur.All(c, &items); err != nil {
		utils.LogError(err, "blog search decode")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blogListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: utils.TotalPages(total, limit),
		Q:          &q,
	})
}

// GET /api/blog/public/:slug
func (bc *BlogController) GetPublicBySlug(c *gin.Context) {
	slug := c.Param("slug")

	// Cache-aside: serve the rendered document from Redis when warm.
	cacheKey := blogCachePrefix + slug
	var cached models.BlogPost
	if utils.CacheGetJSON(cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	var post models.BlogPost
	err := blogCollection().FindOne(c, bson.M{
		"slug":   slug,
		"status": models.StatusPublished,
	}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
		return
	}
	if err != nil {
		utils.LogError(err, "blog get by slug")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.CacheSetJSON(cacheKey, post, bc.cacheTTL)
	c.JSON(http.StatusOK, post)
}

// GET /api/blog/public/resolve/:slug
//
// Looks a post up by the precomputed normalized slug key, so URLs
// carrying Unicode dashes, percent encoding or stray casing still hit
// the right post without any client-side guessing.
func (bc *BlogController) ResolvePublic(c *gin.Context) {
	key := models.NormalizeSlugKey(c.Param("slug"))
	if key == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
		return
	}

	var post models.BlogPost
	err := blogCollection().FindOne(c, bson.M{
		"slugKey": key,
		"status":  models.StatusPublished,
	}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
		return
	}
	if err != nil {
		utils.LogError(err, "blog resolve")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// POST /api/blog (admin)
func (bc *BlogController) Create(c *gin.Context) {
	var in models.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := models.NewBlogPost(in, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := blogCollection().InsertOne(c, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug already exists"})
			return
		}
		utils.LogError(err, "blog create")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}

	bc.invalidateCache(post.Slug)
	c.JSON(http.StatusCreated, post)
}

// PUT /api/blog/:id (admin)
func (bc *BlogController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in models.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	col := blogCollection()
	var post models.BlogPost
	if err := col.FindOne(c, bson.M{"_id": id}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
			return
		}
		utils.LogError(err, "blog update fetch")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	oldSlug := post.Slug

	if err := post.ApplyUpdate(in, time.Now().UTC()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"title":      post.Title,
		"slug":       post.Slug,
		"slugKey":    post.SlugKey,
		"excerpt":    post.Excerpt,
		"content":    post.Content,
		"tags":       post.Tags,
		"coverImage": post.CoverImage,
		"author":     post.Author,
		"status":     post.Status,
		"updatedAt":  post.UpdatedAt,
	}}
	if post.PublishedAt != nil {
		update["$set"].(bson.M)["publishedAt"] = post.PublishedAt
	} else {
		update["$unset"] = bson.M{"publishedAt": ""}
	}

	if _, err := col.UpdateByID(c, id, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug already exists"})
			return
		}
		utils.LogError(err, "blog update")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bc.invalidateCache(oldSlug)
	bc.invalidateCache(post.Slug)
	c.JSON(http.StatusOK, post)
}

// DELETE /api/blog/:id (admin)
func (bc *BlogController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var post models.BlogPost
	err = blogCollection().FindOneAndDelete(c, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
		return
	}
	if err != nil {
		utils.LogError(err, "blog delete")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bc.invalidateCache(post.Slug)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (bc *BlogController) invalidateCache(slug string) {
	if slug == "" {
		return
	}
	utils.CacheDel(blogCachePrefix + slug)
}
