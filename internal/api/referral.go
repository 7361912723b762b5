package referral

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/beingresonated/referral/internal/external/brevo"
	"github.com/beingresonated/referral/internal/external/huggingface"
	interf "github.com/beingresonated/referral/internal/interfaces"
	models "github.com/beingresonated/referral/internal/models"
	service "github.com/beingresonated/referral/internal/services"
)

type Handler struct {
	router    *mux.Router
	campaigns interf.CampaignStorage
	referrals interf.ReferralStorage
	users     interf.UserStorage
	cache     interf.ProfileCache
	textgen   *huggingface.Client
	mailer    *brevo.Client
	appURL    string
	logger    *zap.Logger
}

func NewHandler(campaigns interf.CampaignStorage, referrals interf.ReferralStorage, users interf.UserStorage, cache interf.ProfileCache, textgen *huggingface.Client, mailer *brevo.Client, appURL string, logger *zap.Logger) *Handler {
	router := mux.NewRouter()
	handler := &Handler{router, campaigns, referrals, users, cache, textgen, mailer, appURL, logger}

	router.Use(MiddlewareLog())
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/campaign", handler.CreateCampaignHandler).Methods(http.MethodPost)
	router.HandleFunc("/campaign", handler.GetCampaignHandler).Methods(http.MethodGet)
	router.HandleFunc("/referral", handler.CreateReferralHandler).Methods(http.MethodPost)
	router.HandleFunc("/referral", handler.GetReferralHandler).Methods(http.MethodGet)
	router.HandleFunc("/referral", handler.RedeemReferralHandler).Methods(http.MethodPut)
	router.HandleFunc("/referral/stats", handler.SummaryStatsHandler).Methods(http.MethodGet)
	router.HandleFunc("/referral/time-series", handler.TimeSeriesHandler).Methods(http.MethodGet)
	router.HandleFunc("/customers", handler.CustomersHandler).Methods(http.MethodGet)
	router.HandleFunc("/generate-message", handler.GenerateMessageHandler).Methods(http.MethodPost)
	router.HandleFunc("/sendMessage", handler.SendMessageHandler).Methods(http.MethodPost)
	router.HandleFunc("/webhooks", handler.WebhookHandler).Methods(http.MethodPost)

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *Handler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", "writeJSON", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}

// ошибки клиенту всегда как {"error": "..."}
func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

type CreateCampaignRequest struct {
	Name         string `json:"name"`
	Message      string `json:"message"`
	CreatedBy    string `json:"createdBy"`
	RewardPoints int    `json:"rewardPoints"`
}

type CreateCampaignResponse struct {
	InsertedID   uuid.UUID `json:"insertedId"`
	Acknowledged bool      `json:"acknowledged"`
}

// Создание кампании
func (h *Handler) CreateCampaignHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "CreateCampaignHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer req.Body.Close()

	campaign := &CreateCampaignRequest{}
	err = json.Unmarshal(body, campaign)
	if err != nil {
		h.Log("Unmarshal", "CreateCampaignHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if campaign.Name == "" || campaign.CreatedBy == "" {
		h.writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	now := time.Now().UTC()
	id, err := h.campaigns.Create(req.Context(), models.Campaign{
		Name:         campaign.Name,
		Message:      campaign.Message,
		RewardPoints: campaign.RewardPoints,
		CreatedBy:    campaign.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		h.Log("DB insert", "CreateCampaignHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}
	h.writeJSON(w, http.StatusOK, CreateCampaignResponse{InsertedID: id, Acknowledged: true})
}

// Кампании пользователя либо одна кампания по id
func (h *Handler) GetCampaignHandler(w http.ResponseWriter, req *http.Request) {
	uid := req.URL.Query().Get("uid")
	if uid == "" {
		h.writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if req.URL.Query().Get("type") == "all" {
		campaigns, err := h.campaigns.GetByOwner(req.Context(), uid)
		if err != nil {
			h.Log("DB get", "GetCampaignHandler", err)
			h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if campaigns == nil {
			campaigns = []models.Campaign{}
		}
		h.writeJSON(w, http.StatusOK, campaigns)
		return
	}

	id, err := uuid.Parse(uid)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	campaign, err := h.campaigns.GetByID(req.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if err != nil {
		h.Log("DB get", "GetCampaignHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

type CreateReferralRequest struct {
	UserID     string `json:"userId"`
	CampaignID string `json:"campaignId"`
	ReferredBy string `json:"referredBy"`
}

// Участие в кампании
func (h *Handler) CreateReferralHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "CreateReferralHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer req.Body.Close()

	referral := &CreateReferralRequest{}
	err = json.Unmarshal(body, referral)
	if err != nil {
		h.Log("Unmarshal", "CreateReferralHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}

	serv := service.NewReferralService(h.referrals, h.campaigns, h.appURL, h.logger)
	result, err := serv.Create(req.Context(), referral.UserID, referral.CampaignID, referral.ReferredBy)
	if errors.Is(err, models.ErrValidation) {
		h.writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err != nil {
		h.Log("Create referral", "CreateReferralHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to create referral")
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// Погашение кода либо статистика реферера (type=stats)
func (h *Handler) GetReferralHandler(w http.ResponseWriter, req *http.Request) {
	userId := req.URL.Query().Get("userId")
	if userId == "" {
		h.writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if req.URL.Query().Get("type") == "stats" {
		serv := service.NewStatsService(h.referrals, h.campaigns, h.logger)
		stats, err := serv.OwnerStats(req.Context(), userId)
		if err != nil {
			h.Log("Owner stats", "GetReferralHandler", err)
			h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		h.writeJSON(w, http.StatusOK, stats)
		return
	}

	code := req.URL.Query().Get("code")
	if code == "" {
		h.writeError(w, http.StatusBadRequest, "Referral code is required")
		return
	}

	serv := service.NewReferralService(h.referrals, h.campaigns, h.appURL, h.logger)
	result, err := serv.Redeem(req.Context(), code, userId)
	if errors.Is(err, models.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Invalid referral code")
		return
	}
	if err != nil {
		h.Log("Redeem", "GetReferralHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// Явное погашение без данных кампании в ответе
func (h *Handler) RedeemReferralHandler(w http.ResponseWriter, req *http.Request) {
	code := req.URL.Query().Get("code")
	userId := req.URL.Query().Get("userId")
	if code == "" || userId == "" {
		h.writeError(w, http.StatusBadRequest, "Referral code and user id is required")
		return
	}

	serv := service.NewReferralService(h.referrals, h.campaigns, h.appURL, h.logger)
	result, err := serv.Redeem(req.Context(), code, userId)
	if errors.Is(err, models.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Invalid referral code")
		return
	}
	if err != nil {
		h.Log("Redeem", "RedeemReferralHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if result.Already {
		h.writeError(w, http.StatusBadRequest, "User already referred")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "User successfully added to referrals"})
}

// Сводка по последним рефералам пользователя
func (h *Handler) SummaryStatsHandler(w http.ResponseWriter, req *http.Request) {
	userId := req.URL.Query().Get("userId")
	if userId == "" {
		h.writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	serv := service.NewStatsService(h.referrals, h.campaigns, h.logger)
	stats, err := serv.SummaryStats(req.Context(), userId)
	if err != nil {
		h.Log("Summary stats", "SummaryStatsHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// Временной ряд за 30 дней
func (h *Handler) TimeSeriesHandler(w http.ResponseWriter, req *http.Request) {
	userId := req.URL.Query().Get("userId")
	if userId == "" {
		h.writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	serv := service.NewStatsService(h.referrals, h.campaigns, h.logger)
	series, err := serv.DailyCounts(req.Context(), userId)
	if err != nil {
		h.Log("Time series", "TimeSeriesHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch time series data")
		return
	}
	h.writeJSON(w, http.StatusOK, series)
}

// Цепочки рефералов пользователя
func (h *Handler) CustomersHandler(w http.ResponseWriter, req *http.Request) {
	userId := req.URL.Query().Get("userId")
	if userId == "" {
		h.writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	serv := service.NewChainService(h.referrals, h.users, h.cache, h.logger)
	result, err := serv.BuildChains(req.Context(), userId)
	if err != nil {
		h.Log("Build chains", "CustomersHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch referral chains")
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

type GenerateMessageRequest struct {
	RewardPoints int    `json:"rewardPoints"`
	CampaignName string `json:"campaignName"`
}

// Генерация текста приглашения внешней моделью
func (h *Handler) GenerateMessageHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "GenerateMessageHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer req.Body.Close()

	gen := &GenerateMessageRequest{}
	err = json.Unmarshal(body, gen)
	if err != nil {
		h.Log("Unmarshal", "GenerateMessageHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if gen.RewardPoints == 0 || gen.CampaignName == "" {
		h.writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	messages, err := h.textgen.GenerateMessages(req.Context(), gen.RewardPoints, gen.CampaignName)
	if err != nil {
		h.Log("Generate", "GenerateMessageHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to generate messages")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"messages": messages})
}

type SendMessageRequest struct {
	To         string   `json:"to"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Text       string   `json:"text"`
}

type SendBatchResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Отправка письма, список адресатов обрабатывается с агрегацией сбоев
func (h *Handler) SendMessageHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "SendMessageHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer req.Body.Close()

	msg := &SendMessageRequest{}
	err = json.Unmarshal(body, msg)
	if err != nil {
		h.Log("Unmarshal", "SendMessageHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if (msg.To == "" && len(msg.Recipients) == 0) || msg.Subject == "" || msg.Text == "" {
		h.writeError(w, http.StatusBadRequest, "Missing required fields: to, subject, or text")
		return
	}

	if len(msg.Recipients) > 0 {
		sent, failed := h.mailer.SendBatch(req.Context(), msg.Recipients, msg.Subject, msg.Text)
		h.writeJSON(w, http.StatusOK, SendBatchResponse{Sent: sent, Failed: failed})
		return
	}

	err = h.mailer.SendEmail(req.Context(), msg.To, msg.Subject, msg.Text)
	if err != nil {
		h.Log("Send email", "SendMessageHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully!"})
}

type WebhookRequest struct {
	Type string              `json:"type"`
	Data service.WebhookUser `json:"data"`
}

// Вебхук identity-провайдера
func (h *Handler) WebhookHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "WebhookHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer req.Body.Close()

	event := &WebhookRequest{}
	err = json.Unmarshal(body, event)
	if err != nil {
		h.Log("Unmarshal", "WebhookHandler", err)
		h.writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}

	// остальные типы событий подтверждаем без обработки
	if event.Type != "user.created" {
		h.writeJSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
		return
	}

	serv := service.NewUserService(h.users, h.cache, h.logger)
	err = serv.CreateFromWebhook(req.Context(), event.Data)
	if errors.Is(err, service.ErrUserExists) {
		h.writeError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if errors.Is(err, models.ErrValidation) {
		h.writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err != nil {
		h.Log("Create user", "WebhookHandler", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to insert user")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}
