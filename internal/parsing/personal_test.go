package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPersonal_ContactFields(t *testing.T) {
	text := "Jane Doe\njane@x.com | 555-123-4567\nhttps://janedoe.dev"

	info := ExtractPersonal(text, Lines(text))

	assert.Equal(t, "Jane Doe", info.FullName)
	assert.Equal(t, "jane@x.com", info.Email)
	assert.Equal(t, "555-123-4567", info.Phone)
	assert.Equal(t, "https://janedoe.dev", info.Website)
}

func TestExtractPersonal_NameLineDecorationsStripped(t *testing.T) {
	info := ExtractPersonal("Jane • Doe", []string{"Jane • Doe"})

	assert.Equal(t, "Jane Doe", info.FullName)
}

func TestExtractPersonal_LongFirstLineIsNotAName(t *testing.T) {
	text := "I am writing to express my deep interest in the role and attach a summary of my experience below"

	info := ExtractPersonal(text, Lines(text))

	assert.Equal(t, "", info.FullName)
}

func TestExtractPersonal_TitleFromHeaderSeparator(t *testing.T) {
	header := []string{"Jane Doe — Senior Software Engineer", "jane@x.com"}

	info := ExtractPersonal("Jane Doe — Senior Software Engineer\njane@x.com", header)

	assert.Equal(t, "Senior Software Engineer", info.Title)
}

func TestExtractPersonal_TitleRejectsContactRightSide(t *testing.T) {
	header := []string{"Jane Doe | jane@x.com"}

	info := ExtractPersonal("Jane Doe | jane@x.com", header)

	assert.Equal(t, "", info.Title)
}

func TestExtractPersonal_Location(t *testing.T) {
	header := []string{"Jane Doe", "Austin, TX | jane@x.com"}

	info := ExtractPersonal("Jane Doe\nAustin, TX | jane@x.com", header)

	assert.Equal(t, "Austin, TX", info.Location)
}

func TestExtractPersonal_MissingFieldsStayEmpty(t *testing.T) {
	info := ExtractPersonal("Jane Doe", []string{"Jane Doe"})

	assert.Equal(t, "Jane Doe", info.FullName)
	assert.Equal(t, "", info.Email)
	assert.Equal(t, "", info.Phone)
	assert.Equal(t, "", info.Website)
	assert.Equal(t, "", info.Location)
}

func TestExtractPersonal_InternationalPhone(t *testing.T) {
	info := ExtractPersonal("Jane Doe\n+1 (512) 555-1234", []string{"Jane Doe", "+1 (512) 555-1234"})

	assert.Equal(t, "+1 (512) 555-1234", info.Phone)
}
