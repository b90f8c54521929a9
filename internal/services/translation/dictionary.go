package translation

// phraseDictionary maps known Chinese search phrases to curated English
// queries. Exact match only; partial matches fall through to the providers
// and the local substitution pass.
var phraseDictionary = map[string]string{
	// Common searches
	"商业会议": "business meeting",
	"自然风景": "nature landscape",
	"科技办公": "technology office",
	"美食烹饪": "food cooking",
	"运动健身": "sports fitness",
	"城市夜景": "city night",
	"家庭生活": "family life",
	"教育学习": "education learning",
	"医疗健康": "medical health",
	"旅行度假": "travel vacation",

	// Business
	"商务人士": "business people",
	"团队合作": "teamwork",
	"办公室":  "office",
	"会议室":  "meeting room",
	"商业谈判": "business negotiation",
	"企业文化": "corporate culture",
	"工作场所": "workplace",
	"商业演示": "business presentation",
	"职场":   "workplace",
	"创业":   "startup",

	// Nature
	"山川河流": "mountains rivers",
	"森林树木": "forest trees",
	"海洋湖泊": "ocean lake",
	"日出日落": "sunrise sunset",
	"四季风景": "seasonal landscape",
	"花卉植物": "flowers plants",
	"动物世界": "animal world",
	"蓝天白云": "blue sky white clouds",
	"绿色环保": "green environmental",
	"自然保护": "nature conservation",

	// Technology
	"人工智能": "artificial intelligence",
	"机器学习": "machine learning",
	"数据分析": "data analysis",
	"云计算":  "cloud computing",
	"物联网":  "internet of things",
	"区块链":  "blockchain",
	"虚拟现实": "virtual reality",
	"增强现实": "augmented reality",
	"智能手机": "smartphone",
	"电脑技术": "computer technology",

	// Lifestyle
	"家庭聚餐": "family dinner",
	"儿童玩耍": "children playing",
	"宠物动物": "pets animals",
	"居家生活": "home life",
	"购物消费": "shopping consumption",
	"休闲娱乐": "leisure entertainment",
	"节日庆祝": "holiday celebration",
	"生日派对": "birthday party",
	"婚礼庆典": "wedding ceremony",
	"毕业典礼": "graduation ceremony",

	// Art and design
	"创意设计": "creative design",
	"时尚潮流": "fashion trend",
	"建筑设计": "architecture design",
	"室内装修": "interior decoration",
	"艺术创作": "artistic creation",
	"摄影作品": "photography work",
	"绘画艺术": "painting art",
	"雕塑艺术": "sculpture art",
	"音乐表演": "music performance",
	"舞蹈表演": "dance performance",

	// Education
	"学校教育": "school education",
	"在线学习": "online learning",
	"图书馆":  "library",
	"实验室":  "laboratory",
	"课堂教学": "classroom teaching",
	"学生学习": "student learning",
	"教师授课": "teacher teaching",
	"考试测试": "exam test",
	"毕业证书": "graduation certificate",
	"学术研究": "academic research",

	// Health
	"医院诊所": "hospital clinic",
	"医生护士": "doctor nurse",
	"健康检查": "health checkup",
	"药品医疗": "medicine medical",
	"手术治疗": "surgery treatment",
	"康复训练": "rehabilitation training",
	"心理健康": "mental health",
	"营养饮食": "nutrition diet",
	"健身运动": "fitness exercise",
	"瑜伽冥想": "yoga meditation",

	// Travel
	"旅游景点": "tourist attractions",
	"酒店住宿": "hotel accommodation",
	"交通工具": "transportation",
	"飞机航班": "airplane flight",
	"火车地铁": "train subway",
	"汽车驾驶": "car driving",
	"自行车":  "bicycle",
	"徒步旅行": "hiking travel",
	"海滩度假": "beach vacation",
	"山地探险": "mountain adventure",

	// Food
	"中式料理": "chinese cuisine",
	"西式料理": "western cuisine",
	"日式料理": "japanese cuisine",
	"意式料理": "italian cuisine",
	"快餐食品": "fast food",
	"健康饮食": "healthy diet",
	"素食主义": "vegetarian",
	"咖啡饮品": "coffee drinks",
	"茶文化":  "tea culture",
	"烘焙甜点": "baking dessert",

	// Sports
	"足球比赛": "football match",
	"篮球比赛": "basketball game",
	"网球运动": "tennis sport",
	"游泳运动": "swimming sport",
	"跑步锻炼": "running exercise",
	"健身房":  "gym fitness",
	"瑜伽练习": "yoga practice",
	"武术功夫": "martial arts",
	"极限运动": "extreme sports",
	"户外运动": "outdoor sports",
}

// lookupDictionary returns the curated translation for an exact phrase
// match, if one exists.
func lookupDictionary(text string) (string, bool) {
	translated, ok := phraseDictionary[text]
	return translated, ok
}
