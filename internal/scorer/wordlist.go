package scorer

// builtinWords is the bundled frequency list: common English plus the
// programming vocabulary that keeps ordinary identifiers from being
// flagged. Counts are rough corpus frequencies; they only matter
// relative to each other. An external dictionary file merges on top.
func builtinWords() map[string]int {
	return map[string]int{
		// Common English words
		"the": 9000, "and": 8500, "for": 8000, "are": 7500, "but": 7000,
		"not": 7000, "you": 6500, "all": 6500, "can": 6000, "had": 5500,
		"her": 5000, "was": 5000, "one": 5000, "our": 4500, "out": 4500,
		"day": 4000, "get": 4000, "has": 4000, "him": 3500, "his": 3500,
		"how": 3500, "its": 3500, "may": 3000, "new": 3000, "now": 3000,
		"old": 3000, "see": 3000, "two": 3000, "way": 3000, "who": 3000,
		"let": 2500, "put": 2500, "say": 2500, "too": 2500, "use": 2500,
		"been": 2500, "each": 2500, "from": 2500, "have": 2500, "here": 2500,
		"just": 2500, "like": 2500, "long": 2500, "make": 2500, "many": 2500,
		"over": 2500, "such": 2500, "take": 2500, "than": 2000, "them": 2000,
		"well": 2000, "when": 2000, "with": 2000, "word": 2000, "work": 2000,
		"call": 2000, "came": 2000, "come": 2000, "find": 2000, "first": 2000,
		"good": 2000, "great": 2000, "group": 2000, "hand": 2000, "help": 2000,
		"kind": 2000, "know": 2000, "last": 2000, "left": 2000, "life": 2000,
		"line": 2000, "list": 2000, "look": 2000, "made": 2000, "most": 2000,
		"move": 2000, "must": 2000, "name": 2000, "need": 2000, "next": 2000,
		"only": 2000, "open": 2000, "part": 2000, "play": 2000, "right": 2000,
		"said": 1500, "same": 1500, "seem": 1500, "show": 1500, "small": 1500,
		"sound": 1500, "still": 1500, "time": 1500, "turn": 1500, "want": 1500,
		"water": 1500, "went": 1500, "what": 1500, "where": 1500, "will": 1500,
		"write": 1500, "would": 1500, "year": 1500, "your": 1500, "about": 1500,
		"after": 1500, "again": 1500, "against": 1500, "always": 1500,
		"another": 1500, "around": 1500, "because": 1500, "before": 1500,
		"being": 1500, "between": 1500, "could": 1500, "create": 1500,
		"delete": 1500, "different": 1500, "during": 1500, "every": 1500,
		"example": 1500, "expected": 1500, "general": 1500, "getting": 1500,
		"having": 1500, "however": 1500, "important": 1500, "including": 1500,
		"inside": 1500, "instead": 1500, "might": 1500, "nothing": 1500,
		"number": 1500, "other": 1500, "people": 1500, "person": 1500,
		"place": 1500, "please": 1500, "point": 1500, "possible": 1500,
		"problem": 1500, "really": 1500, "should": 1500, "simple": 1500,
		"since": 1500, "something": 1500, "their": 1500, "there": 1500,
		"these": 1500, "thing": 1500, "think": 1500, "those": 1500,
		"three": 1500, "through": 1500, "today": 1500, "together": 1500,
		"under": 1500, "until": 1500, "while": 1500, "without": 1500,
		"world": 1500, "years": 1500, "yourself": 1500, "hello": 1000,

		// Programming terms
		"function": 3000, "return": 3000, "value": 3000, "string": 3000,
		"object": 3000, "state": 2500, "public": 2500, "system": 2500,
		"async": 2000, "await": 2000, "callback": 2000, "promise": 2000,
		"json": 2000, "api": 2000, "rest": 2000, "graphql": 1000,
		"auth": 2000, "oauth": 1000, "jwt": 1000, "cors": 800,
		"http": 2500, "https": 2000, "url": 2500, "uri": 1500,
		"css": 1500, "html": 1500, "dom": 1500, "svg": 1000,
		"regex": 1500, "regexp": 1200, "uuid": 1000, "csrf": 600, "xss": 500,
		"sql": 1800, "nosql": 600, "orm": 800, "crud": 700,
		"database": 2000, "query": 2000, "index": 2200, "cache": 1800,
		"server": 2500, "client": 2500, "request": 2500, "response": 2500,
		"handler": 2200, "router": 1800, "middleware": 1500, "session": 1800,
		"token": 2200, "header": 2000, "payload": 1500, "buffer": 1800,
		"stream": 1800, "socket": 1500, "thread": 1500, "process": 2000,
		"worker": 1500, "queue": 1500, "stack": 1500, "heap": 1200,
		"array": 2200, "slice": 1800, "field": 2000, "method": 2200,
		"module": 2000, "package": 2000, "import": 2000, "export": 2000,
		"interface": 2200, "struct": 2000, "class": 2200, "type": 2500,
		"const": 2000, "static": 1800, "global": 1500, "local": 1800,
		"parse": 2000, "parser": 1800, "format": 2000, "encode": 1500,
		"decode": 1500, "serialize": 1200, "validate": 1800, "verify": 1500,
		"initialize": 1500, "configure": 1500, "register": 1500,
		"update": 2200, "insert": 1800, "remove": 2000, "append": 1800,
		"fetch": 1800, "load": 2000, "save": 2000, "store": 1800,
		"read": 2200, "reader": 1800, "writer": 1800, "close": 2000,
		"print": 2000, "debug": 1800, "trace": 1500, "level": 1800,
		"error": 2800, "errors": 2200, "warning": 1500, "message": 2200,
		"result": 2500, "results": 2000, "status": 2200, "code": 2500,
		"count": 2200, "total": 2000, "size": 2200, "length": 2200,
		"width": 1800, "height": 1800, "offset": 1800, "limit": 1800,
		"start": 2200, "stop": 1800, "begin": 1500, "end": 2200,
		"input": 2200, "output": 2200, "source": 2000, "target": 2000,
		"key": 2500, "keys": 2000, "values": 2200, "entry": 1800,
		"item": 2200, "items": 2000, "node": 2000, "nodes": 1800,
		"tree": 1800, "graph": 1500, "path": 2200, "file": 2500,
		"files": 2200, "directory": 1800, "folder": 1500, "content": 2000,
		"context": 2200, "scope": 1500, "frame": 1500, "window": 1800,
		"event": 2200, "events": 1800, "listener": 1500, "trigger": 1500,
		"signal": 1500, "channel": 1500, "timeout": 1500, "retry": 1200,
		"option": 2000, "options": 2200, "setting": 1500, "settings": 1800,
		"default": 2200, "custom": 1800, "common": 1800, "shared": 1500,
		"parameter": 1800, "argument": 1800, "variable": 2000,
		"constant": 1500, "literal": 1200, "expression": 1500,
		"statement": 1500, "condition": 1800, "branch": 1500, "loop": 1800,
		"iterator": 1200, "generator": 1200, "factory": 1200, "builder": 1500,
		"manager": 1800, "service": 2200, "controller": 1800, "model": 2200,
		"view": 2000, "template": 1800, "component": 2200, "render": 1800,
		"props": 1500, "attribute": 1500, "element": 2000, "document": 2000,
		"user": 2500, "users": 2200, "admin": 1800, "account": 2000,
		"password": 2000, "email": 2200, "login": 1800, "logout": 1200,
		"test": 2500, "tests": 2000, "mock": 1500, "stub": 1000,
		"spec": 1500, "suite": 1200, "fixture": 1000, "assert": 1500,
		"version": 2200, "release": 1500, "build": 2000, "deploy": 1500,
		"docker": 1200, "kubernetes": 800, "github": 1500, "gitlab": 800,
		"javascript": 1500, "typescript": 1200, "python": 1500, "nodejs": 1000,
		"react": 1500, "angular": 1000, "webpack": 800, "babel": 600,
		"eslint": 600, "prettier": 500, "lodash": 500, "axios": 500,
		"mongodb": 800, "postgresql": 800, "redis": 1000, "elasticsearch": 600,
		"nginx": 800, "apache": 800, "aws": 1200, "azure": 800, "gcp": 600,
		"terraform": 600, "jenkins": 600, "yaml": 1000, "toml": 600,
		"xml": 1200, "csv": 1200, "pdf": 1000, "png": 1000, "jpg": 800,
		"jpeg": 600, "img": 1200, "utf": 1000, "ascii": 1000, "unicode": 1000,

		// Common abbreviations
		"btn": 800, "src": 1500, "dest": 1200, "tmp": 1200, "temp": 1500,
		"min": 1800, "max": 1800, "avg": 1000, "std": 1000, "sum": 1500,
		"usr": 600, "pwd": 800, "repo": 1200, "pkg": 1200, "lib": 1500,
		"util": 1500, "utils": 1500, "ctrl": 800, "cmd": 1500, "arg": 1500,
		"args": 1800, "param": 1500, "params": 1800, "opt": 1200,
		"opts": 1500, "req": 1800, "res": 1800, "err": 2500, "ctx": 1800,
		"cfg": 1500, "idx": 1500, "num": 1500, "str": 1800, "obj": 1500,
		"arr": 1200, "len": 1800, "cnt": 800, "pos": 1500, "ptr": 1000,
		"ref": 1500, "env": 1800, "dev": 1500, "prod": 1200, "app": 2200,
		"init": 1800, "impl": 1000, "enum": 1200, "bool": 1800,
		"func": 2000, "var": 2000, "void": 1500, "npm": 1000, "mut": 600,
	}
}
