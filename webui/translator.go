package webui

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/deepnoodle-ai/parley/log"
	"github.com/deepnoodle-ai/parley/translate"
)

var translatorTemplate = mustParse("translator.html")

// TranslatorHandler serves the translator app: an input form, a target
// language dropdown, and a newest-first translation history.
type TranslatorHandler struct {
	translator *translate.Translator
	history    *translate.History
	logger     log.Logger
	mux        *http.ServeMux
}

// NewTranslatorHandler builds the handler with its routes registered.
func NewTranslatorHandler(translator *translate.Translator, history *translate.History, logger log.Logger) *TranslatorHandler {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	h := &TranslatorHandler{
		translator: translator,
		history:    history,
		logger:     logger,
		mux:        http.NewServeMux(),
	}
	h.mux.HandleFunc("/", h.handleIndex)
	h.mux.HandleFunc("/translate", h.handleTranslate)
	h.mux.HandleFunc("/clear", h.handleClear)
	return h
}

func (h *TranslatorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type translatorPage struct {
	Languages    []string
	SelectedLang string
	Entries      []translate.Entry
	Notice       string
	Warning      string
	Error        string
}

func (h *TranslatorHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	selected := r.URL.Query().Get("lang")
	if !translate.IsSupported(selected) {
		selected = translate.DefaultLanguage
	}
	render(w, h.logger, translatorTemplate, translatorPage{
		Languages:    translate.Languages(),
		SelectedLang: selected,
		Entries:      h.history.Entries(),
		Notice:       r.URL.Query().Get("notice"),
		Warning:      r.URL.Query().Get("warning"),
		Error:        r.URL.Query().Get("error"),
	})
}

func (h *TranslatorHandler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	text := r.FormValue("text")
	lang := r.FormValue("lang")
	if !translate.IsSupported(lang) {
		lang = translate.DefaultLanguage
	}
	if text == "" {
		redirect(w, r, url.Values{
			"lang":    {lang},
			"warning": {"Please enter some text to translate."},
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := h.translator.Translate(ctx, text, lang)
	if err != nil {
		h.logger.Error("translation failed", "target_lang", lang, "error", err)
		redirect(w, r, url.Values{
			"lang":  {lang},
			"error": {"An error occurred during translation. Please check your API key and try again."},
		})
		return
	}
	h.history.Add(result)
	redirect(w, r, url.Values{
		"lang":   {lang},
		"notice": {"Translation complete!"},
	})
}

func (h *TranslatorHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.history.Clear()
	redirect(w, r, url.Values{
		"notice": {"Translation history cleared!"},
	})
}

func redirect(w http.ResponseWriter, r *http.Request, params url.Values) {
	target := "/"
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func formatTimestamp(t time.Time) string {
	return t.Format("03:04 PM, Jan 02, 2006")
}
