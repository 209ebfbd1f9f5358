package handler

import (
	"context"
	"log/slog"
	"net/http"
	"stock_predictor/internal/feature/symbollist/domain/entity"
	"stock_predictor/internal/feature/symbollist/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// MessageListFailed はカタログの読み出しに失敗した場合にクライアントへ返すメッセージです。
// 内部エラーの詳細は公開しません。
const MessageListFailed = "failed to load symbols"

// SymbolUsecase は銘柄情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler は銘柄情報に関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List はカタログに登録された有効な銘柄と基準価格の一覧を返すAPIです。
// 一覧にない銘柄も予測には使えますが、基準価格は乱数で決まります。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		slog.Error("failed to list symbols", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": MessageListFailed})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Code: s.Code, Name: s.Name, BasePrice: s.BasePrice})
	}
	c.JSON(http.StatusOK, out)
}
