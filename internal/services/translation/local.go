package translation

import "strings"

// wordMapping is one Chinese-to-English substitution. The table below is
// applied strictly in declaration order: overlapping entries can partially
// rewrite each other's output. That matches the observed behavior of the
// original word list and is why this is a slice rather than a map.
type wordMapping struct {
	zh string
	en string
}

var localWords = []wordMapping{
	{"视频", "video"},
	{"图片", "image"},
	{"照片", "photo"},
	{"音乐", "music"},
	{"背景", "background"},
	{"素材", "material"},
	{"内容", "content"},
	{"资源", "resource"},
	{"商务", "business"},
	{"商业", "business"},
	{"会议", "meeting"},
	{"办公", "office"},
	{"工作", "work"},
	{"团队", "team"},
	{"合作", "cooperation"},
	{"企业", "enterprise"},
	{"公司", "company"},
	{"职业", "professional"},
	{"自然", "nature"},
	{"风景", "landscape"},
	{"山", "mountain"},
	{"海", "sea"},
	{"河", "river"},
	{"湖", "lake"},
	{"树", "tree"},
	{"花", "flower"},
	{"草", "grass"},
	{"动物", "animal"},
	{"鸟", "bird"},
	{"鱼", "fish"},
	{"科技", "technology"},
	{"技术", "technology"},
	{"电脑", "computer"},
	{"手机", "mobile"},
	{"网络", "network"},
	{"数据", "data"},
	{"软件", "software"},
	{"硬件", "hardware"},
	{"互联网", "internet"},
	{"人工智能", "artificial intelligence"},
	{"美食", "food"},
	{"烹饪", "cooking"},
	{"运动", "sports"},
	{"健身", "fitness"},
	{"家庭", "family"},
	{"生活", "life"},
	{"房子", "house"},
	{"汽车", "car"},
	{"购物", "shopping"},
	{"娱乐", "entertainment"},
	{"艺术", "art"},
	{"设计", "design"},
	{"创意", "creative"},
	{"时尚", "fashion"},
	{"建筑", "architecture"},
	{"绘画", "painting"},
	{"摄影", "photography"},
	{"电影", "movie"},
	{"文化", "culture"},
	{"教育", "education"},
	{"学习", "learning"},
	{"学校", "school"},
	{"学生", "student"},
	{"老师", "teacher"},
	{"书", "book"},
	{"知识", "knowledge"},
	{"研究", "research"},
	{"科学", "science"},
	{"历史", "history"},
	{"医疗", "medical"},
	{"健康", "health"},
	{"医院", "hospital"},
	{"医生", "doctor"},
	{"护士", "nurse"},
	{"药", "medicine"},
	{"治疗", "treatment"},
	{"手术", "surgery"},
	{"检查", "examination"},
	{"康复", "rehabilitation"},
	{"旅行", "travel"},
	{"度假", "vacation"},
	{"城市", "city"},
	{"国家", "country"},
	{"酒店", "hotel"},
	{"飞机", "airplane"},
	{"火车", "train"},
	{"地图", "map"},
	{"景点", "attraction"},
	{"日出", "sunrise"},
	{"日落", "sunset"},
	{"夜晚", "night"},
	{"白天", "day"},
	{"早晨", "morning"},
	{"下午", "afternoon"},
	{"晚上", "evening"},
	{"春天", "spring"},
	{"夏天", "summer"},
	{"秋天", "autumn"},
	{"冬天", "winter"},
	{"红色", "red"},
	{"蓝色", "blue"},
	{"绿色", "green"},
	{"黄色", "yellow"},
	{"黑色", "black"},
	{"白色", "white"},
	{"灰色", "gray"},
	{"紫色", "purple"},
	{"橙色", "orange"},
	{"粉色", "pink"},
}

// pinyinChars romanizes a small fixed set of characters common in stock
// media searches. Characters outside this set are left as-is.
var pinyinChars = map[rune]string{
	'商': "shang",
	'业': "ye",
	'会': "hui",
	'议': "yi",
	'自': "zi",
	'然': "ran",
	'风': "feng",
	'景': "jing",
	'科': "ke",
	'技': "ji",
	'美': "mei",
	'食': "shi",
	'运': "yun",
	'动': "dong",
	'城': "cheng",
	'市': "shi",
	'家': "jia",
	'庭': "ting",
	'教': "jiao",
	'育': "yu",
	'医': "yi",
	'疗': "liao",
	'旅': "lv",
	'行': "xing",
}

// containsCJK reports whether s contains any CJK unified ideographs
func containsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fff {
			return true
		}
	}
	return false
}

// translateLocally is the fallback of last resort. It substitutes known
// words in declaration order, then romanizes characters it recognizes, and
// finally appends a generic marker so the result always carries ASCII the
// upstream search index can work with. Never returns an empty string for
// non-empty input.
func translateLocally(text string) string {
	translated := text
	for _, m := range localWords {
		if strings.Contains(text, m.zh) {
			translated = strings.ReplaceAll(translated, m.zh, m.en)
		}
	}

	if translated == text && containsCJK(text) {
		var b strings.Builder
		for _, r := range text {
			if py, ok := pinyinChars[r]; ok {
				b.WriteString(py)
				b.WriteString(" ")
			} else if r >= 0x4e00 && r <= 0x9fff {
				b.WriteRune(r)
				b.WriteString(" ")
			} else {
				b.WriteRune(r)
			}
		}
		translated = strings.TrimSpace(b.String())
	}

	if translated == text && containsCJK(text) {
		translated = text + " content"
	}

	return translated
}
