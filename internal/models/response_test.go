package models

import (
	"fmt"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	r := NewResponse(false)

	assert.Equal(t, "1.0", r.Version)
	assert.Nil(t, r.SessionAttributes)
	assert.Nil(t, r.Body.OutputSpeech)
	assert.Nil(t, r.Body.Card)
	assert.Nil(t, r.Body.Reprompt)
	assert.False(t, r.Body.ShouldEndSession)

	data, err := RenderResponse(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": "1.0", "response": {"shouldEndSession": false}}`, string(data))
}

func TestSimpleResponse(t *testing.T) {
	r := SimpleResponse("t", "x")

	assert.True(t, r.Body.ShouldEndSession)
	require.NotNil(t, r.Body.Card)
	assert.Equal(t, CardSimple, r.Body.Card.Type())
	assert.Equal(t, "t", r.Body.Card.Title())
	assert.Equal(t, "x", r.Body.Card.Content())
	require.NotNil(t, r.Body.OutputSpeech)
	assert.Equal(t, SpeechPlainText, r.Body.OutputSpeech.Type())
	assert.Equal(t, "x", r.Body.OutputSpeech.Text())
	assert.Empty(t, r.Body.OutputSpeech.SSML())

	data, err := RenderResponse(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": "1.0",
		"response": {
			"outputSpeech": {"type": "PlainText", "text": "x"},
			"card": {"type": "Simple", "title": "t", "content": "x"},
			"shouldEndSession": true
		}
	}`, string(data))
}

func TestEndSession(t *testing.T) {
	data, err := RenderResponse(EndSession())
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": "1.0", "response": {"shouldEndSession": true}}`, string(data))
}

func TestBuilder(t *testing.T) {
	img := NewImage().
		WithSmallImageURL("baaz.png").
		WithLargeImageURL("baazLarge.png")

	r := NewResponse(false).
		WithCard(StandardCard("foo", "bar", img)).
		WithSpeech(PlainSpeech("hello")).
		WithSpeech(SSMLSpeech("<speak>hi</speak>").WithPlayBehavior(PlayReplaceAll)).
		WithReprompt(PlainSpeech("still there?"))
	r.AddAttribute("attr", "value")
	r.AddAttribute("attr", "other")
	r.AddAttribute("second", "2")

	assert.Equal(t, map[string]string{"attr": "other", "second": "2"}, r.SessionAttributes)
	assert.Equal(t, "foo", r.Body.Card.Title())
	assert.Equal(t, "bar", r.Body.Card.Text())
	assert.Empty(t, r.Body.Card.Content())
	gotImg, ok := r.Body.Card.Image()
	require.True(t, ok)
	assert.Equal(t, img, gotImg)
	assert.Equal(t, SpeechSSML, r.Body.OutputSpeech.Type())
	assert.Empty(t, r.Body.OutputSpeech.Text())

	data, err := RenderResponse(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": "1.0",
		"sessionAttributes": {"attr": "other", "second": "2"},
		"response": {
			"outputSpeech": {"type": "SSML", "ssml": "<speak>hi</speak>", "playBehavior": "REPLACE_ALL"},
			"card": {
				"type": "Standard",
				"title": "foo",
				"text": "bar",
				"image": {"smallImageUrl": "baaz.png", "largeImageUrl": "baazLarge.png"}
			},
			"reprompt": {"outputSpeech": {"type": "PlainText", "text": "still there?"}},
			"shouldEndSession": false
		}
	}`, string(data))
}

func TestCards(t *testing.T) {
	testCases := []struct {
		name string
		card Card
		want string
	}{
		{
			name: "simple_empty",
			card: SimpleCard("", ""),
			want: `{"type": "Simple", "title": "", "content": ""}`,
		},
		{
			name: "standard_without_urls",
			card: StandardCard("a", "b", NewImage()),
			want: `{"type": "Standard", "title": "a", "text": "b", "image": {}}`,
		},
		{
			name: "link_account",
			card: LinkAccountCard(),
			want: `{"type": "LinkAccount"}`,
		},
		{
			name: "ask_for_permissions",
			card: AskForPermissionsCard([]string{"read::alexa:device:all:address"}),
			want: `{"type": "AskForPermissionsConsent", "permissions": ["read::alexa:device:all:address"]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := RenderResponse(NewResponse(true).WithCard(tc.card))
			require.NoError(t, err)

			var got struct {
				Response struct {
					Card map[string]any `json:"card"`
				} `json:"response"`
			}
			require.NoError(t, json.Unmarshal(data, &got))
			card, err := json.Marshal(got.Response.Card)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(card))
		})
	}
}

func TestPlainSpeechKeepsEmptyText(t *testing.T) {
	data, err := RenderResponse(NewResponse(false).WithSpeech(PlainSpeech("")))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": "1.0",
		"response": {"outputSpeech": {"type": "PlainText", "text": ""}, "shouldEndSession": false}
	}`, string(data))
}

func TestRenderOmitsEmptyAttributes(t *testing.T) {
	r := NewResponse(true)
	r.SessionAttributes = map[string]string{}

	data, err := RenderResponse(r)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sessionAttributes")
	assert.NotContains(t, string(data), "null")
}

func TestInvalidSpeechDoesNotRender(t *testing.T) {
	_, err := RenderResponse(NewResponse(true).WithSpeech(Speech{}))
	assert.Error(t, err)
}

func TestResponseRoundTrip(t *testing.T) {
	responses := map[string]*Response{
		"bare":   NewResponse(false),
		"end":    EndSession(),
		"simple": SimpleResponse("hello", "hello world"),
		"composed": NewResponse(false).
			WithSpeech(SSMLSpeech("<speak>a</speak>").WithPlayBehavior(PlayEnqueue)).
			WithCard(StandardCard("t", "x", NewImage().WithSmallImageURL("s.png"))).
			WithReprompt(PlainSpeech("again")).
			AddAttribute("k", "v"),
		"link":        NewResponse(true).WithCard(LinkAccountCard()),
		"permissions": NewResponse(true).WithCard(AskForPermissionsCard([]string{"a", "b"})),
	}

	for name, r := range responses {
		t.Run(name, func(t *testing.T) {
			data, err := RenderResponse(r)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "null")

			got, err := ParseResponse(data)
			require.NoError(t, err)
			assert.Equal(t, r, got)
		})
	}
}

func TestParseResponseRejectsUnknownSpeech(t *testing.T) {
	_, err := ParseResponse([]byte(`{"version": "1.0", "response": {"outputSpeech": {"type": "Whisper", "text": "x"}, "shouldEndSession": true}}`))
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = ParseResponse([]byte(`{"version": "1.0", "response": {"outputSpeech": {"type": "SSML", "text": "x"}, "shouldEndSession": true}}`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestAttributeRoundTrip(t *testing.T) {
	resp := SimpleResponse("t", "x").AddAttribute("attr", "value")
	data, err := RenderResponse(resp)
	require.NoError(t, err)

	var rendered struct {
		SessionAttributes jsoniter.RawMessage `json:"sessionAttributes"`
	}
	require.NoError(t, json.Unmarshal(data, &rendered))
	require.NotEmpty(t, rendered.SessionAttributes)

	// the platform sends the attributes back in the next request's session
	next := fmt.Sprintf(`{
		"version": "1.0",
		"session": {
			"new": false,
			"sessionId": "s",
			"attributes": %s,
			"application": {"applicationId": "a"},
			"user": {"userId": "u"}
		},
		"context": {"System": {}},
		"request": {"type": "IntentRequest", "requestId": "r", "timestamp": "t", "locale": "en-US", "intent": {"name": "hello"}}
	}`, rendered.SessionAttributes)

	req, err := ParseRequest([]byte(next))
	require.NoError(t, err)

	v, ok := req.AttributeValue("attr")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}
