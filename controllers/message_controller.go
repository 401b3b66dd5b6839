package controllers

import (
	"net/http"
	"regexp"
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

type MessageController struct{}

func NewMessageController() *MessageController {
	return &MessageController{}
}

func messageCollection() *mongo.Collection {
	return utils.GetDB().Collection(database.MessageCollection)
}

type messagePage struct {
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int64            `json:"total"`
	TotalPages int64            `json:"totalPages"`
	HasPrev    bool             `json:"hasPrev"`
	HasNext    bool             `json:"hasNext"`
	Items      []models.Message `json:"items"`
	Note       string           `json:"note,omitempty"`
}

func newMessagePage(page, limit int, total int64, items []models.Message) messagePage {
	return messagePage{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, limit),
		HasPrev:    page > 1,
		HasNext:    int64(page*limit) < total,
		Items:      items,
	}
}

// GET /api/message — ping
func (mc *MessageController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from API Controller!"})
}

// POST /api/message
func (mc *MessageController) Create(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	clean, err := models.CleanMessageText(body.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	msg := models.Message{Text: clean, CreatedAt: now, UpdatedAt: now}
	res, err := messageCollection().InsertOne(c, msg)
	if err != nil {
		utils.LogError(err, "message create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid
	}
	c.JSON(http.StatusCreated, msg)
}

// GET /api/message/all?page&limit
func (mc *MessageController) List(c *gin.Context) {
	page := utils.ParsePage(c.Query("page"))
	limit := utils.ParseLimit(c.Query("limit"), 10, 100)

	total, items, err := mc.findMessages(c, bson.M{}, page, limit,
		bson.D{{Key: "createdAt", Value: -1}}, nil)
	if err != nil {
		utils.LogError(err, "message list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newMessagePage(page, limit, total, items))
}

// PUT /api/message/:id
func (mc *MessageController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	clean, err := models.CleanMessageText(body.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated models.Message
	err = messageCollection().FindOneAndUpdate(c,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": clean, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		utils.LogError(err, "message update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/message/:id
func (mc *MessageController) Delete(c *gin.Context) {
	idHex := c.Param("id")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := messageCollection().DeleteOne(c, bson.M{"_id": id})
	if err != nil {
		utils.LogError(err, "message delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedId": idHex})
}

// GET /api/message/search?query&sort&page&limit
//
// Full-text search over the message text index; an empty query
// degrades to the recent listing. When the text query fails (for
// example the index is absent) the handler retries with a
// case-insensitive regex and flags the response.
func (mc *MessageController) Search(c *gin.Context) {
	sort := strings.ToLower(c.DefaultQuery("sort", "relevance"))
	if sort != "relevance" && sort != "recent" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort; allowed values: relevance, recent"})
		return
	}
	query := strings.TrimSpace(c.Query("query"))
	page := utils.ParsePage(c.Query("page"))
	limit := utils.ParseLimit(c.Query("limit"), 10, 50)

	// Empty query -> recent list with pagination
	if query == "" {
		total, items, err := mc.findMessages(c, bson.M{}, page, limit,
			bson.D{{Key: "createdAt", Value: -1}}, nil)
		if err != nil {
			utils.LogError(err, "message search empty")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, newMessagePage(page, limit, total, items))
		return
	}

	filter := bson.M{"$text": bson.M{"$search": query}}
	sortSpec := bson.D{{Key: "createdAt", Value: -1}}
	var projection bson.M
	if sort == "relevance" {
		projection = bson.M{"score": bson.M{"$meta": "textScore"}}
		sortSpec = bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "createdAt", Value: -1},
		}
	}

	total, items, err := mc.findMessages(c, filter, page, limit, sortSpec, projection)
	if err != nil {
		mc.searchRegexFallback(c, query, page, limit)
		return
	}
	c.JSON(http.StatusOK, newMessagePage(page, limit, total, items))
}

// searchRegexFallback is the degraded path when the text index query
// fails: a case-insensitive substring match sorted by recency.
func (mc *MessageController) searchRegexFallback(c *gin.Context, query string, page, limit int) {
	filter := bson.M{"text": bson.M{
		"$regex":   regexp.QuoteMeta(query),
		"$options": "i",
	}}
	total, items, err := mc.findMessages(c, filter, page, limit,
		bson.D{{Key: "createdAt", Value: -1}}, nil)
	if err != nil {
		utils.LogError(err, "message search fallback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed."})
		return
	}
	out := newMessagePage(page, limit, total, items)
	out.Note = "Regex fallback used (text index not active)."
	c.JSON(http.StatusOK, out)
}

func (mc *MessageController) findMessages(c *gin.Context, filter bson.M, page, limit int, sort bson.D, projection bson.M) (int64, []models.Message, error) {
	col := messageCollection()
	total, err := col.CountDocuments(c, filter)
	if err != nil {
		return 0, nil, err
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	if projection != nil {
		opts.SetProjection(projection)
	}
	cur, err := col.Find(c, filter, opts)
	if err != nil {
		return 0, nil, err
	}
	items := []models.Message{}
	if err := cur.All(c, &items); err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
