package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto e tamanho compatíveis com os ids curtos dos arquivos de carga
const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera um id curto para linhas de carga sem identificador
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
