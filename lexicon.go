package grammar

// Per-class English→Vietnamese dictionaries. A miss echoes the English
// word, so vocabulary outside the dictionaries still renders.

var verbGlosses = map[string]string{
	"be":         "là",
	"have":       "có",
	"do":         "làm",
	"go":         "đi",
	"come":       "đến",
	"get":        "được",
	"make":       "làm",
	"take":       "lấy",
	"give":       "cho",
	"see":        "thấy",
	"know":       "biết",
	"think":      "nghĩ",
	"say":        "nói",
	"tell":       "kể",
	"speak":      "nói",
	"work":       "làm việc",
	"study":      "học",
	"learn":      "học",
	"teach":      "dạy",
	"read":       "đọc",
	"write":      "viết",
	"listen":     "nghe",
	"understand": "hiểu",
	"help":       "giúp",
	"want":       "muốn",
	"need":       "cần",
	"like":       "thích",
	"love":       "yêu",
	"eat":        "ăn",
	"drink":      "uống",
	"sleep":      "ngủ",
	"walk":       "đi bộ",
	"run":        "chạy",
	"play":       "chơi",
	"watch":      "xem",
	"buy":        "mua",
	"sell":       "bán",
	"open":       "mở",
	"close":      "đóng",
	"start":      "bắt đầu",
	"finish":     "kết thúc",
	"win":        "thắng",
	"lose":       "thua",
	"find":       "tìm",
	"meet":       "gặp",
	"leave":      "rời",
	"arrive":     "đến",
	"call":       "gọi",
	"answer":     "trả lời",
	"ask":        "hỏi",
	"wait":       "đợi",
	"remember":   "nhớ",
	"forget":     "quên",
	"feel":       "cảm thấy",
	"look":       "nhìn",
	"seem":       "có vẻ",
	"become":     "trở thành",
	"live":       "sống",
	"die":        "chết",
	"cook":       "nấu",
	"clean":      "dọn dẹp",
	"wash":       "rửa",
	"drive":      "lái xe",
	"fly":        "bay",
	"swim":       "bơi",
	"dance":      "nhảy",
	"sing":       "hát",
	"smile":      "mỉm cười",
	"laugh":      "cười",
	"cry":        "khóc",
	"accept":     "chấp nhận",
	"refuse":     "từ chối",
	"agree":      "đồng ý",
	"disagree":   "không đồng ý",
	"fire":       "sa thải",
	"steal":      "ăn trộm",
	"injure":     "làm bị thương",
	"damage":     "làm hỏng",
	"arrest":     "bắt",
	"punish":     "phạt",
	"break":      "làm vỡ",
	"destroy":    "phá hủy",
	"hurt":       "làm đau",
	"attack":     "tấn công",
	"rob":        "cướp",
	"cheat":      "lừa",
	"criticize":  "chỉ trích",
	"reject":     "từ chối",
	"talk":       "nói chuyện",
	"bring":      "mang đến",
	"invite":     "mời",
	"visit":      "thăm",
}

var adjectiveGlosses = map[string]string{
	"good":        "tốt",
	"bad":         "xấu",
	"big":         "lớn",
	"small":       "nhỏ",
	"happy":       "vui",
	"sad":         "buồn",
	"beautiful":   "đẹp",
	"ugly":        "xấu",
	"smart":       "thông minh",
	"stupid":      "ngu",
	"fast":        "nhanh",
	"slow":        "chậm",
	"hot":         "nóng",
	"cold":        "lạnh",
	"new":         "mới",
	"old":         "cũ",
	"young":       "trẻ",
	"easy":        "dễ",
	"difficult":   "khó",
	"important":   "quan trọng",
	"interesting": "thú vị",
	"boring":      "nhàm chán",
	"tired":       "mệt",
	"excited":     "hứng thú",
	"busy":        "bận",
}

var adverbGlosses = map[string]string{
	"quickly":   "nhanh chóng",
	"slowly":    "chậm chạp",
	"carefully": "cẩn thận",
	"easily":    "dễ dàng",
	"often":     "thường xuyên",
	"sometimes": "đôi khi",
	"never":     "không bao giờ",
	"always":    "luôn luôn",
	"usually":   "thường",
	"rarely":    "hiếm khi",
	"here":      "ở đây",
	"there":     "ở đó",
	"now":       "bây giờ",
	"today":     "hôm nay",
	"yesterday": "hôm qua",
	"tomorrow":  "ngày mai",
	"well":      "tốt",
	"hard":      "chăm chỉ",
}

var nounGlosses = map[string]string{
	"book":      "cuốn sách",
	"car":       "xe ô tô",
	"house":     "ngôi nhà",
	"dog":       "con chó",
	"cat":       "con mèo",
	"teacher":   "giáo viên",
	"student":   "học sinh",
	"friend":    "bạn bè",
	"family":    "gia đình",
	"water":     "nước",
	"food":      "thức ăn",
	"school":    "trường học",
	"work":      "công việc",
	"money":     "tiền",
	"time":      "thời gian",
	"day":       "ngày",
	"night":     "đêm",
	"morning":   "buổi sáng",
	"afternoon": "buổi chiều",
	"evening":   "buổi tối",
	"apple":     "quả táo",
	"office":    "văn phòng",
	"park":      "công viên",
	"table":     "cái bàn",
}

var prepositionGlosses = map[string]string{
	"in":      "trong",
	"on":      "trên",
	"at":      "tại",
	"under":   "dưới",
	"behind":  "phía sau",
	"near":    "gần",
	"next to": "bên cạnh",
	"between": "giữa",
	"into":    "vào trong",
	"from":    "từ",
	"to":      "đến",
	"with":    "với",
	"for":     "cho",
	"by":      "bởi",
	"before":  "trước",
	"after":   "sau",
	"during":  "trong suốt",
	"since":   "từ khi",
}

func lookup(dict map[string]string, word string) string {
	if vi, ok := dict[normalizeWord(word)]; ok {
		return vi
	}
	return word
}

// TranslateVerb glosses a base verb, echoing it on a miss.
func TranslateVerb(verb string) string { return lookup(verbGlosses, verb) }

// TranslateAdjective glosses an adjective, echoing it on a miss.
func TranslateAdjective(adj string) string { return lookup(adjectiveGlosses, adj) }

// TranslateAdverb glosses an adverb, echoing it on a miss.
func TranslateAdverb(adv string) string { return lookup(adverbGlosses, adv) }

// TranslateNoun glosses a noun, echoing it on a miss.
func TranslateNoun(noun string) string { return lookup(nounGlosses, noun) }

// TranslatePreposition glosses a preposition, echoing it on a miss.
func TranslatePreposition(prep string) string { return lookup(prepositionGlosses, prep) }
