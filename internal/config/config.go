package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSQL is the stock PDV product query. Override with QUERY_SQL.
const DefaultSQL = `SELECT
  cod_ean,
  dta_alteracao,
  dta_cadastro,
  des_produto,
  flg_status,
  qtd_estoque_atual,
  val_custo AS custo,
  val_venda AS vr1,
  des_marca,
  dta_vencimento,
  cod_interno,
  codpai,
  des_cor,
  flg_pai,
  des_tamanho,
  val_venda_dois AS vr2,
  flg_envia_balanca,
  cod_imposto AS tri,
  obs_produto,
  ncm,
  unidade,
  val_venda_promocao AS pro,
  des_secao AS dep
  FROM public.tb_produto WHERE flg_pai = false OR flg_status = true`

type Config struct {
	OutputDir     string
	RejectLogPath string

	BaseColumn      string
	MandatoryPrefix []string
	BarcodeColumn   string
	Opening         string
	Closing         string
	PairSeparator   string
	LabelSeparator  string
	ValidateEAN13   bool
	PreviewLines    int
	CRLF            bool

	DBDriver   string
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBPath     string
	QuerySQL   string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir:     getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		RejectLogPath: getEnv("EAN13_LOG_PATH", filepath.Join(cwd, "ean13_invalid.log")),

		BaseColumn:      normalizeColumn(getEnv("EXPORT_BASE_COLUMN", "DES_PRODUTO")),
		MandatoryPrefix: SplitColumns(getEnv("EXPORT_MANDATORY_PREFIX", "COD_INTERNO,COD_EAN")),
		BarcodeColumn:   normalizeColumn(getEnv("EXPORT_BARCODE_COLUMN", "COD_EAN")),
		Opening:         getEnv("EXPORT_OPENING", "("),
		Closing:         getEnv("EXPORT_CLOSING", ")"),
		PairSeparator:   getEnv("EXPORT_PAIR_SEPARATOR", " / "),
		LabelSeparator:  getEnv("EXPORT_LABEL_SEPARATOR", ": "),
		ValidateEAN13:   getEnvBool("EXPORT_VALIDATE_EAN13", false),
		PreviewLines:    getEnvInt("EXPORT_PREVIEW_LINES", 10),
		CRLF:            getEnvBool("EXPORT_CRLF", false),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBName:     getEnv("DB_NAME", "PDV"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPath:     getEnv("DB_PATH", filepath.Join(cwd, "data", "pdv.db")),
		QuerySQL:   getEnv("QUERY_SQL", DefaultSQL),
	}

	return cfg, nil
}

// SplitColumns parses a comma separated column list, trimming and
// uppercasing each name and dropping empty entries.
func SplitColumns(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = normalizeColumn(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeColumn(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
