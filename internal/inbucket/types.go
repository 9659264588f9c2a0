package inbucket

import (
	"net/mail"
	"time"
)

// Header is the summary of a stored message, as returned by the mailbox listing.
type Header struct {
	Mailbox string    `json:"mailbox"`
	ID      string    `json:"id"`
	From    string    `json:"from"`
	To      []string  `json:"to"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Size    int64     `json:"size"`
	Seen    bool      `json:"seen"`
}

// Message is a fully decoded message including its bodies.
type Message struct {
	Mailbox     string       `json:"mailbox"`
	ID          string       `json:"id"`
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	Date        time.Time    `json:"date"`
	Size        int64        `json:"size"`
	Seen        bool         `json:"seen"`
	Body        Body         `json:"body"`
	Header      mail.Header  `json:"header"`
	Attachments []Attachment `json:"attachments"`
	Errors      []MIMEError  `json:"errors"`
}

// Body holds the text and HTML renderings of a message.
type Body struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

type Attachment struct {
	FileName     string `json:"filename"`
	ContentType  string `json:"content-type"`
	DownloadLink string `json:"download-link"`
	ViewLink     string `json:"view-link"`
	MD5          string `json:"md5"`
}

// MIMEError describes a problem the server hit while parsing the message.
type MIMEError struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Severe bool   `json:"severe"`
}

// HasHTML reports whether the message carries an HTML part.
func (m Message) HasHTML() bool {
	return m.Body.HTML != ""
}

// Summary returns the list entry for the message.
func (m Message) Summary() Header {
	return Header{
		Mailbox: m.Mailbox,
		ID:      m.ID,
		From:    m.From,
		To:      m.To,
		Subject: m.Subject,
		Date:    m.Date,
		Size:    m.Size,
		Seen:    m.Seen,
	}
}

type seenPatch struct {
	Seen bool `json:"seen"`
}
