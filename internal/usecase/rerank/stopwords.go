package rerank

// stopWords are dropped before keyword matching. The list skews toward
// common English filler so product nouns and adjectives survive.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"that": {}, "the": {}, "to": {}, "was": {}, "will": {}, "with": {},
	"this": {}, "but": {}, "they": {}, "have": {}, "had": {}, "what": {},
	"said": {}, "each": {}, "which": {}, "their": {}, "time": {},
	"if": {}, "up": {}, "out": {}, "many": {}, "then": {}, "them": {},
	"these": {}, "so": {}, "some": {}, "her": {}, "would": {},
	"make": {}, "like": {}, "into": {}, "him": {}, "two": {},
	"more": {}, "very": {}, "after": {}, "words": {}, "long": {},
	"than": {}, "first": {}, "been": {}, "call": {}, "who": {},
	"oil": {}, "now": {}, "find": {}, "down": {}, "day": {},
	"did": {}, "get": {}, "come": {}, "made": {}, "may": {},
	"part": {}, "over": {}, "new": {}, "sound": {}, "take": {},
	"only": {}, "little": {}, "work": {}, "know": {}, "place": {},
	"year": {}, "live": {}, "me": {}, "back": {}, "give": {},
	"most": {}, "thing": {}, "our": {}, "just": {}, "name": {},
	"good": {}, "sentence": {}, "man": {}, "think": {}, "say": {},
	"great": {}, "where": {}, "help": {}, "through": {}, "much": {},
	"before": {}, "line": {}, "right": {}, "too": {}, "mean": {},
	"old": {}, "any": {}, "same": {}, "tell": {}, "boy": {},
	"follow": {}, "came": {}, "want": {}, "show": {}, "also": {},
	"around": {}, "form": {}, "three": {}, "small": {}, "set": {},
	"put": {}, "end": {}, "does": {}, "another": {}, "well": {},
	"large": {}, "must": {}, "big": {}, "even": {}, "such": {},
	"because": {}, "turn": {}, "here": {}, "why": {}, "ask": {},
	"went": {}, "men": {}, "read": {}, "need": {}, "land": {},
	"different": {}, "home": {}, "us": {}, "move": {}, "try": {},
	"kind": {}, "hand": {}, "picture": {}, "again": {}, "change": {},
	"off": {}, "play": {}, "spell": {}, "air": {}, "away": {},
	"animal": {}, "house": {}, "point": {}, "page": {}, "letter": {},
	"mother": {}, "answer": {}, "found": {}, "study": {}, "still": {},
	"learn": {}, "should": {}, "america": {}, "world": {}, "high": {},
	"every": {}, "near": {}, "add": {}, "food": {}, "between": {},
	"own": {}, "below": {}, "country": {}, "plant": {}, "last": {},
	"school": {}, "father": {}, "keep": {}, "tree": {}, "never": {},
	"start": {}, "city": {}, "earth": {}, "eye": {}, "light": {},
	"thought": {}, "head": {}, "under": {}, "story": {}, "saw": {},
	"left": {}, "don't": {}, "few": {}, "while": {}, "along": {},
	"might": {}, "close": {}, "something": {}, "seem": {}, "next": {},
	"hard": {}, "open": {}, "example": {}, "begin": {}, "life": {},
	"always": {}, "those": {}, "both": {}, "paper": {}, "together": {},
	"got": {}, "group": {}, "often": {}, "run": {}, "important": {},
	"until": {}, "children": {}, "side": {}, "feet": {}, "car": {},
	"mile": {}, "night": {}, "walk": {}, "sea": {}, "began": {},
	"grow": {}, "took": {}, "river": {}, "four": {}, "carry": {},
	"state": {}, "once": {}, "book": {}, "hear": {}, "stop": {},
	"without": {}, "second": {}, "later": {}, "miss": {}, "idea": {},
	"enough": {}, "eat": {}, "face": {}, "watch": {}, "far": {},
	"really": {}, "almost": {}, "let": {}, "above": {}, "girl": {},
	"sometimes": {}, "mountain": {}, "cut": {}, "young": {},
	"talk": {}, "soon": {}, "list": {}, "song": {}, "leave": {},
	"family": {}, "it's": {},
}

// categoryWords are garment and accessory nouns that demand near-exact
// presence in a candidate. A query naming one of these is asking for
// that item type, not a loosely related product.
var categoryWords = map[string]struct{}{
	"dress": {}, "dresses": {},
	"top": {}, "tops": {},
	"shirt": {}, "shirts": {},
	"blouse": {}, "blouses": {},
	"pants": {}, "trousers": {}, "jeans": {},
	"skirt": {}, "skirts": {},
	"jacket": {}, "jackets": {},
	"coat": {}, "coats": {},
	"blazer": {}, "blazers": {},
	"cardigan": {}, "cardigans": {},
	"sweater": {}, "sweaters": {},
	"jumper": {}, "jumpers": {},
	"shorts": {},
	"jumpsuit": {}, "jumpsuits": {},
	"romper": {}, "rompers": {},
	"suit": {}, "suits": {},
	"shoes": {}, "shoe": {}, "heels": {}, "sneakers": {}, "boots": {}, "sandals": {},
	"bag": {}, "bags": {}, "purse": {}, "handbag": {}, "tote": {},
	"jewelry": {}, "earrings": {}, "necklace": {}, "bracelet": {}, "ring": {},
	"accessory": {}, "accessories": {},
}
