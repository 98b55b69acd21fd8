// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

// stopwords is the fixed English stopword set: determiners, pronouns,
// prepositions, conjunctions, auxiliaries, and spoken-transcript fillers.
// Stopwords terminate a phrase run during normalization.
var stopwords = map[string]bool{
	// determiners and pronouns
	"a": true, "an": true, "the": true, "this": true, "that": true,
	"these": true, "those": true, "some": true, "any": true, "each": true,
	"every": true, "no": true, "i": true, "me": true, "my": true,
	"mine": true, "we": true, "us": true, "our": true, "ours": true,
	"you": true, "your": true, "yours": true, "he": true, "him": true,
	"his": true, "she": true, "her": true, "hers": true, "it": true,
	"its": true, "they": true, "them": true, "their": true, "theirs": true,
	"who": true, "whom": true, "whose": true, "which": true, "what": true,
	"something": true, "anything": true, "everything": true, "nothing": true,
	"someone": true, "anyone": true, "everyone": true, "one": true,

	// prepositions and conjunctions
	"of": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "with": true, "about": true, "against": true,
	"between": true, "into": true, "through": true, "during": true,
	"before": true, "after": true, "above": true, "below": true,
	"to": true, "from": true, "up": true, "down": true, "out": true,
	"off": true, "over": true, "under": true, "again": true, "then": true,
	"once": true, "here": true, "there": true, "when": true, "where": true,
	"why": true, "how": true, "and": true, "but": true, "or": true,
	"because": true, "as": true, "if": true, "while": true, "than": true,
	"so": true, "both": true, "either": true, "neither": true, "nor": true,

	// auxiliaries and common verbs of being
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "having": true, "do": true, "does": true, "did": true,
	"doing": true, "will": true, "would": true, "shall": true,
	"should": true, "can": true, "could": true, "may": true, "might": true,
	"must": true, "ought": true, "not": true, "don't": true, "doesn't": true,
	"isn't": true, "aren't": true, "won't": true, "can't": true,
	"it's": true, "that's": true, "there's": true, "let's": true,
	"we're": true, "you're": true, "i'm": true, "we'll": true,
	"you'll": true, "i'll": true, "we've": true, "you've": true,
	"i've": true, "gonna": true, "wanna": true, "gotta": true,

	// adverbs and quantifiers common in speech
	"very": true, "too": true, "also": true, "just": true, "only": true,
	"now": true, "more": true, "most": true, "less": true, "least": true,
	"all": true, "few": true, "other": true, "such": true, "own": true,
	"same": true, "well": true, "even": true, "still": true, "yet": true,
	"ever": true, "never": true, "always": true, "often": true,
	"really": true, "quite": true, "pretty": true, "maybe": true,
	"perhaps": true, "however": true, "therefore": true, "thus": true,

	// spoken-transcript fillers
	"um": true, "uh": true, "erm": true, "ah": true, "oh": true,
	"hmm": true, "like": true, "basically": true, "actually": true,
	"literally": true, "right": true, "okay": true, "ok": true,
	"yeah": true, "yes": true, "hey": true, "alright": true,
}

// IsStopword reports whether tok is a run boundary during normalization.
// The empty token (left by punctuation) always counts as one.
func IsStopword(tok string) bool {
	return tok == "" || stopwords[tok]
}
